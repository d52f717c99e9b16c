package render

import "image/color"

// FillElevationRGBA converts grid samples into RGBA pixels in buf, shading
// each sample by its position in [min, max]. buf must hold 4 bytes per sample.
func FillElevationRGBA(buf []byte, vals []float64, min, max float64, ramp Palette, alpha uint8) {
	span := max - min
	if !(span > 0) {
		span = 1
	}
	for i, v := range vals {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		c := ramp.At((v - min) / span)
		c = shade(c, 0.35)
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = alpha
	}
}

// shade darkens c so the underlay stays behind the contour strokes.
func shade(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
