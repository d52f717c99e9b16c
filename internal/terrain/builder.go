// Package terrain builds the per-frame elevation grid from fractal noise and
// the smoothed control signal.
package terrain

import (
	"math"

	"topoviz/internal/core"
	"topoviz/internal/noise"
	"topoviz/internal/signal"
)

const (
	minCellSize = 3.0
	maxCellSize = 8.0

	// cellSizeWidth is the viewport width at which the cell size reaches its
	// 3px floor; narrower viewports get proportionally coarser cells.
	cellSizeWidth = 1920 * minCellSize

	// maxStepMillis bounds how far a single frame may advance time.
	maxStepMillis = 250.0
)

// CellSize returns the grid cell size in pixels for a viewport width. It is
// inversely proportional to width and clamped to [3, 8].
func CellSize(width int) float64 {
	if width <= 0 {
		return maxCellSize
	}
	s := cellSizeWidth / float64(width)
	if s < minCellSize {
		return minCellSize
	}
	if s > maxCellSize {
		return maxCellSize
	}
	return s
}

// GridDims returns the sample counts needed to cover a viewport with cells of
// the given size: one sample past each edge, at least 1×1.
func GridDims(width, height int, cell float64) (int, int) {
	if !(cell > 0) {
		cell = maxCellSize
	}
	cols, rows := 1, 1
	if width > 0 {
		cols = int(math.Ceil(float64(width)/cell)) + 1
	}
	if height > 0 {
		rows = int(math.Ceil(float64(height)/cell)) + 1
	}
	return cols, rows
}

// Builder owns the elevation grid and the state that survives between frames:
// the smoothed control bands and the time offset.
type Builder struct {
	cfg    Config
	field  noise.Field
	grid   *core.ScalarGrid
	smooth *signal.Smoothed

	t        float64
	smoothed signal.Control
	evals    int
}

// NewBuilder returns a builder with a 1×1 grid. Call Resize or ResizeGrid
// before the first Build.
func NewBuilder(cfg Config) *Builder {
	cfg = cfg.Normalize()
	b := &Builder{
		cfg:    cfg,
		grid:   core.NewScalarGrid(1, 1, maxCellSize, maxCellSize),
		smooth: signal.NewSmoothed(cfg.SmoothingMillis),
	}
	b.field = fieldFor(cfg)
	return b
}

func fieldFor(cfg Config) noise.Field {
	f, ok := noise.New(cfg.Noise, cfg.Seed)
	if !ok {
		core.Logger().Warn("terrain: unknown noise backend, using perlin", "noise", cfg.Noise, "known", noise.Backends())
		return noise.DefaultPerlin
	}
	return f
}

// Config returns the active configuration.
func (b *Builder) Config() Config { return b.cfg }

// SetConfig replaces the configuration. The grid, time offset and smoothed
// bands are kept.
func (b *Builder) SetConfig(cfg Config) {
	cfg = cfg.Normalize()
	if cfg.Noise != b.cfg.Noise || cfg.Seed != b.cfg.Seed {
		b.field = fieldFor(cfg)
	}
	b.smooth.SetTau(cfg.SmoothingMillis)
	b.cfg = cfg
}

// Grid returns the owned grid. Its contents are overwritten by every Build.
func (b *Builder) Grid() *core.ScalarGrid { return b.grid }

// Field returns the base noise field.
func (b *Builder) Field() noise.Field { return b.field }

// Smoothed returns the control bands used by the last Build.
func (b *Builder) Smoothed() signal.Control { return b.smoothed }

// Time returns the current time offset in noise units.
func (b *Builder) Time() float64 { return b.t }

// Evaluations returns how many noise-field evaluations the last Build made.
func (b *Builder) Evaluations() int { return b.evals }

// Resize applies the viewport contract for a width×height pixel canvas and
// reports whether the grid buffer was reallocated.
func (b *Builder) Resize(width, height int) bool {
	cell := CellSize(width)
	cols, rows := GridDims(width, height, cell)
	return b.ResizeGrid(cols, rows, cell, cell)
}

// ResizeGrid sets explicit grid dimensions and cell size. Old contents are
// discarded when the dimensions change.
func (b *Builder) ResizeGrid(cols, rows int, cellW, cellH float64) bool {
	realloc := b.grid.Reshape(cols, rows, cellW, cellH)
	if realloc {
		core.Logger().Debug("terrain: grid reallocated",
			"cols", b.grid.Cols, "rows", b.grid.Rows, "cell_w", b.grid.CellW, "cell_h", b.grid.CellH)
	}
	return realloc
}

// Reset rewinds time and clears the smoothed bands.
func (b *Builder) Reset() {
	b.t = 0
	b.smooth.Reset()
	b.smoothed = signal.Control{}
}

// Build advances time by dtMillis, smooths ctrl, and overwrites every grid
// sample with
//
//	fbm(nx·ScaleX + t, ny·ScaleY + 0.7t)
//	  + bass·LiftGain·(1 − LiftFalloff·d)
//	  + treble·RippleGain·noise(nx·RippleFreq + 1.9t, ny·RippleFreq − 1.3t)
//	  + mid·UndulationGain·noise(nx·UndulationFreq + 53.1 − 0.8t, ny·UndulationFreq + 17.7 + 0.5t)
//
// where (nx, ny) ∈ [0,1]² and d is the distance from the grid center. The
// grid range is recorded in the same pass.
func (b *Builder) Build(ctrl signal.Control, dtMillis float64) *core.ScalarGrid {
	dt := dtMillis
	if !(dt > 0) {
		dt = 0
	}
	if dt > maxStepMillis {
		dt = maxStepMillis
	}

	cfg := b.cfg
	s := b.smooth.Update(ctrl, dt)
	b.smoothed = s

	rate := cfg.Speed * (1 + cfg.SpeedBassMod*s.Bass)
	b.t += dt / 1000 * rate * cfg.TimeRate
	t := b.t

	lift := s.Bass * cfg.LiftGain
	ripple := s.Treble * cfg.RippleGain
	undulation := s.Mid * cfg.UndulationGain
	octaves := noise.ClampOctaves(cfg.Octaves)
	field := b.field

	g := b.grid
	cols, rows := g.Cols, g.Rows
	vals := g.Values()
	sx := 0.0
	if cols > 1 {
		sx = 1 / float64(cols-1)
	}
	sy := 0.0
	if rows > 1 {
		sy = 1 / float64(rows-1)
	}

	min, max := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		ny := float64(r) * sy
		if rows == 1 {
			ny = 0.5
		}
		row := vals[r*cols : (r+1)*cols]
		for c := range row {
			nx := float64(c) * sx
			if cols == 1 {
				nx = 0.5
			}
			v := noise.FBM(field, nx*cfg.ScaleX+t, ny*cfg.ScaleY+0.7*t, octaves, 2.0, 0.5)
			if lift != 0 {
				d := math.Hypot(nx-0.5, ny-0.5)
				v += lift * (1 - cfg.LiftFalloff*d)
			}
			if ripple != 0 {
				v += ripple * field.Sample(nx*cfg.RippleFreq+1.9*t, ny*cfg.RippleFreq-1.3*t)
			}
			if undulation != 0 {
				v += undulation * field.Sample(nx*cfg.UndulationFreq+53.1-0.8*t, ny*cfg.UndulationFreq+17.7+0.5*t)
			}
			row[c] = v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	g.SetRange(min, max)

	perSample := octaves
	if ripple != 0 {
		perSample++
	}
	if undulation != 0 {
		perSample++
	}
	b.evals = cols * rows * perSample
	return g
}
