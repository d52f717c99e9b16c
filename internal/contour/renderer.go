package contour

import "topoviz/internal/core"

// Batch is every segment for one threshold. Segments alias the renderer's
// scratch buffer and are only valid during DrawBatch.
type Batch struct {
	Index     int
	Threshold float64
	Norm      float64
	Segments  []Segment
}

// Drawer is the boundary to the rendering backend.
type Drawer interface {
	DrawBatch(b Batch)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(b Batch)

// DrawBatch implements Drawer.
func (f DrawerFunc) DrawBatch(b Batch) { f(b) }

// Stats summarizes one Render call.
type Stats struct {
	Levels   int
	Segments int
	PerLevel []int
	// CellVisits counts marching-squares cell evaluations.
	CellVisits int
}

// Renderer derives thresholds from a grid's range and drives Extract once
// per threshold. Its buffers are reused between frames.
type Renderer struct {
	Levels int

	thresholds []float64
	segments   []Segment
	perLevel   []int
}

// NewRenderer returns a renderer drawing levels-1 iso-lines per frame.
func NewRenderer(levels int) *Renderer {
	return &Renderer{Levels: levels}
}

// Render extracts every level of g in ascending threshold order and hands
// each batch to d. A nil d still extracts, which is useful for measurement.
// Stats.PerLevel aliases an internal buffer valid until the next Render.
func (r *Renderer) Render(g *core.ScalarGrid, d Drawer) Stats {
	r.thresholds = Thresholds(r.thresholds[:0], g.Min, g.Max, r.Levels)
	r.perLevel = r.perLevel[:0]

	st := Stats{Levels: len(r.thresholds)}
	cells := 0
	if g.Cols > 1 && g.Rows > 1 {
		cells = (g.Cols - 1) * (g.Rows - 1)
	}
	for i, th := range r.thresholds {
		r.segments = Extract(r.segments[:0], g, th, i)
		n := len(r.segments)
		r.perLevel = append(r.perLevel, n)
		st.Segments += n
		st.CellVisits += cells
		if d != nil && n > 0 {
			d.DrawBatch(Batch{
				Index:     i,
				Threshold: th,
				Norm:      NormalizedLevel(i, r.Levels),
				Segments:  r.segments,
			})
		}
	}
	st.PerLevel = r.perLevel
	return st
}
