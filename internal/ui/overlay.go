//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"topoviz/internal/core"
	"topoviz/internal/render"
	"topoviz/internal/signal"
)

// Overlay draws optional debugging visuals around the contour map: a shaded
// elevation underlay and meters for the smoothed control bands.
type Overlay struct {
	showElev   bool
	showMeters bool

	elevationImg *ebiten.Image
	elevationBuf []byte
}

// NewOverlay constructs a new overlay instance with the meters visible.
func NewOverlay() *Overlay {
	return &Overlay{showMeters: true}
}

// Update toggles layers: 1 for the elevation underlay, 2 for band meters.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMeters = !o.showMeters
	}
}

// DrawUnder paints layers that belong beneath the contour strokes.
func (o *Overlay) DrawUnder(screen *ebiten.Image, g *core.ScalarGrid) {
	if !o.showElev || g == nil {
		return
	}
	total := g.Cols * g.Rows
	if total == 0 {
		return
	}
	if o.elevationImg == nil || o.elevationImg.Bounds().Dx() != g.Cols || o.elevationImg.Bounds().Dy() != g.Rows {
		o.elevationImg = ebiten.NewImage(g.Cols, g.Rows)
		o.elevationBuf = make([]byte, 4*total)
	}
	render.FillElevationRGBA(o.elevationBuf, g.Values(), g.Min, g.Max, render.DefaultPalette, 255)
	o.elevationImg.WritePixels(o.elevationBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.CellW, g.CellH)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.elevationImg, op)
}

// DrawOver paints layers that belong above the contour strokes.
func (o *Overlay) DrawOver(screen *ebiten.Image, s signal.Control) {
	if !o.showMeters {
		return
	}
	const (
		x      = 12
		bottom = 12
		width  = 10
		gap    = 6
		height = 80
	)
	h := screen.Bounds().Dy()
	bands := []struct {
		v   float64
		col color.RGBA
	}{
		{s.Bass, color.RGBA{R: 230, G: 90, B: 70, A: 220}},
		{s.Mid, color.RGBA{R: 120, G: 210, B: 110, A: 220}},
		{s.Treble, color.RGBA{R: 90, G: 150, B: 240, A: 220}},
		{s.Volume, color.RGBA{R: 220, G: 220, B: 220, A: 220}},
	}
	for i, b := range bands {
		bx := float32(x + i*(width+gap))
		by := float32(h - bottom - height)
		vector.DrawFilledRect(screen, bx, by, width, height, color.RGBA{R: 30, G: 30, B: 36, A: 180}, false)
		filled := float32(clamp01(b.v) * height)
		vector.DrawFilledRect(screen, bx, by+height-filled, width, filled, b.col, false)
	}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
