package core

import "math"

// Size describes the dimensions of a sample grid.
type Size struct {
	W int
	H int
}

// ScalarGrid stores a 2D grid of elevation samples in row-major order.
//
// The backing slice is owned by the grid and only reallocated by Reshape when
// the dimensions change, so per-frame writers can overwrite it in place.
type ScalarGrid struct {
	Cols, Rows   int
	CellW, CellH float64

	// Min and Max hold the range recorded by the last SetRange call.
	Min, Max float64

	data []float64
}

// NewScalarGrid allocates a grid with the given dimensions. Dimensions below 1
// are clamped to 1.
func NewScalarGrid(cols, rows int, cellW, cellH float64) *ScalarGrid {
	g := &ScalarGrid{}
	g.Reshape(cols, rows, cellW, cellH)
	return g
}

// Reshape resizes the grid. The buffer is reallocated, and its contents
// discarded, only when the column or row count changes. It reports whether a
// reallocation happened.
func (g *ScalarGrid) Reshape(cols, rows int, cellW, cellH float64) bool {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if !(cellW > 0) || math.IsInf(cellW, 0) {
		cellW = 1
	}
	if !(cellH > 0) || math.IsInf(cellH, 0) {
		cellH = 1
	}
	g.CellW, g.CellH = cellW, cellH
	if g.data != nil && cols == g.Cols && rows == g.Rows {
		return false
	}
	g.Cols, g.Rows = cols, rows
	g.data = make([]float64, cols*rows)
	g.Min, g.Max = 0, 0
	return true
}

// Size returns the grid dimensions in samples.
func (g *ScalarGrid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Values exposes the backing slice so callers can read/write samples directly.
func (g *ScalarGrid) Values() []float64 { return g.data }

// Index returns the linear slice index for column c and row r.
func (g *ScalarGrid) Index(c, r int) int { return r*g.Cols + c }

// At returns the sample at column c, row r.
func (g *ScalarGrid) At(c, r int) float64 { return g.data[r*g.Cols+c] }

// Set stores v at column c, row r.
func (g *ScalarGrid) Set(c, r int, v float64) { g.data[r*g.Cols+c] = v }

// Point maps a grid index to canvas coordinates.
func (g *ScalarGrid) Point(c, r int) (float64, float64) {
	return float64(c) * g.CellW, float64(r) * g.CellH
}

// Fill overwrites every sample with v and records a flat range.
func (g *ScalarGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
	g.Min, g.Max = v, v
}

// SetRange records the sample range computed by the writer.
func (g *ScalarGrid) SetRange(min, max float64) {
	g.Min, g.Max = min, max
}

// ScanRange recomputes Min and Max from the samples in one pass.
func (g *ScalarGrid) ScanRange() (float64, float64) {
	if len(g.data) == 0 {
		g.Min, g.Max = 0, 0
		return 0, 0
	}
	min, max := g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	g.Min, g.Max = min, max
	return min, max
}
