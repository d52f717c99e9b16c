package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"topoviz/internal/contour"
)

// PNGDrawer strokes contour batches onto an offscreen gg canvas.
type PNGDrawer struct {
	Palette   Palette
	Thickness float64
	// Alpha scales stroke opacity, typically from the smoothed volume.
	Alpha float64

	dc  *gg.Context
	err error
}

// NewPNGDrawer allocates a width×height canvas.
func NewPNGDrawer(width, height int) *PNGDrawer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &PNGDrawer{
		Palette:   DefaultPalette,
		Thickness: 1,
		Alpha:     1,
		dc:        gg.NewContext(width, height),
	}
}

// Clear fills the canvas with the palette background and forgets earlier
// stroke errors.
func (d *PNGDrawer) Clear() {
	d.dc.ClearWithColor(gg.FromColor(d.Palette.Background))
	d.err = nil
}

// DrawBatch implements contour.Drawer. The first stroke error is kept and
// reported by Err.
func (d *PNGDrawer) DrawBatch(b contour.Batch) {
	c := d.Palette.At(b.Norm)
	alpha := float64(c.A) / 255 * clampUnit(d.Alpha)
	d.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
	d.dc.SetLineWidth(StrokeWidth(d.Thickness, b.Norm))
	for _, s := range b.Segments {
		d.dc.MoveTo(s.X1, s.Y1)
		d.dc.LineTo(s.X2, s.Y2)
	}
	if err := d.dc.Stroke(); err != nil && d.err == nil {
		d.err = fmt.Errorf("stroke level %d: %w", b.Index, err)
	}
}

// Err returns the first stroke error since the last Clear.
func (d *PNGDrawer) Err() error { return d.err }

// Image returns the canvas contents.
func (d *PNGDrawer) Image() image.Image { return d.dc.Image() }

// SavePNG writes the canvas to path.
func (d *PNGDrawer) SavePNG(path string) error {
	if err := d.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (d *PNGDrawer) EncodePNG(w io.Writer) error {
	return d.dc.EncodePNG(w)
}

// Close releases the canvas.
func (d *PNGDrawer) Close() error { return d.dc.Close() }

func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
