//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"topoviz/internal/contour"
)

// ScreenDrawer strokes contour batches onto an ebiten image.
type ScreenDrawer struct {
	Target    *ebiten.Image
	Palette   Palette
	Thickness float64
	Alpha     float64
	// OffsetX/OffsetY translate segments, e.g. to sit beside a HUD.
	OffsetX, OffsetY float32
}

// NewScreenDrawer returns a drawer with the default palette.
func NewScreenDrawer() *ScreenDrawer {
	return &ScreenDrawer{Palette: DefaultPalette, Thickness: 1, Alpha: 1}
}

// DrawBatch implements contour.Drawer.
func (d *ScreenDrawer) DrawBatch(b contour.Batch) {
	if d.Target == nil {
		return
	}
	c := d.Palette.At(b.Norm)
	c.A = uint8(float64(c.A) * clampUnit(d.Alpha))
	clr := color.Color(c)
	width := float32(StrokeWidth(d.Thickness, b.Norm))
	for _, s := range b.Segments {
		vector.StrokeLine(d.Target,
			float32(s.X1)+d.OffsetX, float32(s.Y1)+d.OffsetY,
			float32(s.X2)+d.OffsetX, float32(s.Y2)+d.OffsetY,
			width, clr, true)
	}
}
