// Package render holds drawing backends for contour batches.
package render

import (
	"image/color"
	"math"
)

// Palette maps a normalized contour level to a stroke color by blending
// through its stops.
type Palette struct {
	Stops      []color.NRGBA
	Background color.NRGBA
}

// DefaultPalette runs from deep blue valleys to pale peaks.
var DefaultPalette = Palette{
	Stops: []color.NRGBA{
		{R: 40, G: 70, B: 160, A: 255},
		{R: 40, G: 160, B: 150, A: 255},
		{R: 170, G: 200, B: 90, A: 255},
		{R: 230, G: 170, B: 80, A: 255},
		{R: 245, G: 240, B: 230, A: 255},
	},
	Background: color.NRGBA{R: 10, G: 12, B: 18, A: 255},
}

// At returns the color for norm in [0, 1]. Values outside are clamped.
func (p Palette) At(norm float64) color.NRGBA {
	switch len(p.Stops) {
	case 0:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case 1:
		return p.Stops[0]
	}
	if math.IsNaN(norm) || norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	pos := norm * float64(len(p.Stops)-1)
	i := int(pos)
	if i >= len(p.Stops)-1 {
		return p.Stops[len(p.Stops)-1]
	}
	return blendColors(p.Stops[i], p.Stops[i+1], pos-float64(i))
}

func blendColors(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// StrokeWidth scales the configured thickness so higher levels draw slightly
// heavier lines.
func StrokeWidth(thickness, norm float64) float64 {
	if thickness <= 0 {
		thickness = 1
	}
	return thickness * (0.7 + 0.6*norm)
}
