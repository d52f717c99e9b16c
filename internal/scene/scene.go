// Package scene runs one frame of the contour pipeline: build the elevation
// grid, extract every level, hand the batches to a drawer.
package scene

import (
	"topoviz/internal/contour"
	"topoviz/internal/core"
	"topoviz/internal/signal"
	"topoviz/internal/terrain"
)

// Cost counts the work done by one frame.
type Cost struct {
	NoiseEvals int
	CellVisits int
}

// FrameStats summarizes one Step.
type FrameStats struct {
	Frame    int
	Size     core.Size
	Min, Max float64
	Smoothed signal.Control
	Contours contour.Stats
	Cost     Cost
}

// Scene owns a terrain builder and a contour renderer. It is not safe for
// concurrent use; hosts drive it from their render loop.
type Scene struct {
	builder  *terrain.Builder
	renderer *contour.Renderer
	frame    int
}

// New returns a scene for cfg. Call Resize before the first Step.
func New(cfg terrain.Config) *Scene {
	b := terrain.NewBuilder(cfg)
	return &Scene{
		builder:  b,
		renderer: contour.NewRenderer(b.Config().Levels),
	}
}

// Config returns the active, normalized configuration.
func (s *Scene) Config() terrain.Config { return s.builder.Config() }

// SetConfig replaces the configuration without resetting the grid or time.
func (s *Scene) SetConfig(cfg terrain.Config) {
	s.builder.SetConfig(cfg)
	s.renderer.Levels = s.builder.Config().Levels
}

// Resize applies the viewport contract for a width×height canvas.
func (s *Scene) Resize(width, height int) bool {
	return s.builder.Resize(width, height)
}

// ResizeGrid sets explicit grid dimensions.
func (s *Scene) ResizeGrid(cols, rows int, cellW, cellH float64) bool {
	return s.builder.ResizeGrid(cols, rows, cellW, cellH)
}

// Grid returns the elevation grid of the last Step.
func (s *Scene) Grid() *core.ScalarGrid { return s.builder.Grid() }

// Builder exposes the underlying terrain builder.
func (s *Scene) Builder() *terrain.Builder { return s.builder }

// Reset rewinds time and smoothing. The grid keeps its dimensions.
func (s *Scene) Reset() {
	s.builder.Reset()
	s.frame = 0
}

// Step advances one frame by dtMillis and draws every contour level to d.
// Everything completes before Step returns.
func (s *Scene) Step(ctrl signal.Control, dtMillis float64, d contour.Drawer) FrameStats {
	g := s.builder.Build(ctrl, dtMillis)
	cs := s.renderer.Render(g, d)
	s.frame++
	return FrameStats{
		Frame:    s.frame,
		Size:     g.Size(),
		Min:      g.Min,
		Max:      g.Max,
		Smoothed: s.builder.Smoothed(),
		Contours: cs,
		Cost: Cost{
			NoiseEvals: s.builder.Evaluations(),
			CellVisits: cs.CellVisits,
		},
	}
}
