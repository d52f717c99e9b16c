// Package contour extracts iso-lines from a scalar grid with marching squares
// and forwards them, level by level, to a drawing backend.
package contour

import "topoviz/internal/core"

// Segment is a line in canvas space produced for one threshold.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Level  int
}

// Edge identifies one side of a grid cell.
type Edge uint8

const (
	Top    Edge = iota // tl–tr
	Right              // tr–br
	Bottom             // bl–br
	Left               // tl–bl
)

// EdgePair is two cell edges joined by one segment.
type EdgePair [2]Edge

type caseEntry struct {
	n     int
	pairs [2]EdgePair
}

// minDenominator replaces the corner difference when two straddling corners
// are (nearly) equal.
const minDenominator = 1e-9

// edgeTable maps a case index (tl=8, tr=4, br=2, bl=1) to the edges it joins.
// The saddles 5 and 10 always emit both pairs that cut off the two corners
// below the threshold, without sampling the cell centre.
var edgeTable = [16]caseEntry{
	0:  {},
	1:  {1, [2]EdgePair{{Bottom, Left}}},
	2:  {1, [2]EdgePair{{Right, Bottom}}},
	3:  {1, [2]EdgePair{{Right, Left}}},
	4:  {1, [2]EdgePair{{Top, Right}}},
	5:  {2, [2]EdgePair{{Top, Left}, {Right, Bottom}}},
	6:  {1, [2]EdgePair{{Top, Bottom}}},
	7:  {1, [2]EdgePair{{Top, Left}}},
	8:  {1, [2]EdgePair{{Top, Left}}},
	9:  {1, [2]EdgePair{{Top, Bottom}}},
	10: {2, [2]EdgePair{{Top, Right}, {Bottom, Left}}},
	11: {1, [2]EdgePair{{Top, Right}}},
	12: {1, [2]EdgePair{{Right, Left}}},
	13: {1, [2]EdgePair{{Right, Bottom}}},
	14: {1, [2]EdgePair{{Bottom, Left}}},
	15: {},
}

// CaseIndex builds the 4-bit marching-squares case for one cell.
func CaseIndex(tl, tr, br, bl, threshold float64) int {
	idx := 0
	if tl >= threshold {
		idx |= 8
	}
	if tr >= threshold {
		idx |= 4
	}
	if br >= threshold {
		idx |= 2
	}
	if bl >= threshold {
		idx |= 1
	}
	return idx
}

// EdgePairs returns the edge pairs joined for a case index. Indices outside
// [0, 15] yield nothing.
func EdgePairs(caseIndex int) []EdgePair {
	if caseIndex < 0 || caseIndex > 15 {
		return nil
	}
	e := edgeTable[caseIndex]
	return e.pairs[:e.n:e.n]
}

// crossing returns the fraction along v0→v1 where the threshold is met.
func crossing(v0, v1, threshold float64) float64 {
	d := v1 - v0
	if d < minDenominator && d > -minDenominator {
		if d < 0 {
			d = -minDenominator
		} else {
			d = minDenominator
		}
	}
	t := (threshold - v0) / d
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

type cell struct {
	x, y, w, h     float64
	tl, tr, br, bl float64
}

func (c *cell) point(e Edge, threshold float64) (float64, float64) {
	switch e {
	case Top:
		return c.x + c.w*crossing(c.tl, c.tr, threshold), c.y
	case Right:
		return c.x + c.w, c.y + c.h*crossing(c.tr, c.br, threshold)
	case Bottom:
		return c.x + c.w*crossing(c.bl, c.br, threshold), c.y + c.h
	default:
		return c.x, c.y + c.h*crossing(c.tl, c.bl, threshold)
	}
}

// Extract appends the iso-line segments of g at threshold to dst and returns
// the extended slice. Each segment is tagged with level.
//
// The scan visits every cell once: O(cols×rows) per threshold, so drawing L
// levels costs O(L×cols×rows) per frame. That product is the dominant
// per-frame cost of the pipeline and is tuned through the level count or
// grid resolution. Extract allocates only when dst must grow; reusing dst
// across calls keeps the scan allocation-free.
func Extract(dst []Segment, g *core.ScalarGrid, threshold float64, level int) []Segment {
	if g == nil || g.Cols < 2 || g.Rows < 2 {
		return dst
	}
	cols := g.Cols
	vals := g.Values()
	var c cell
	c.w, c.h = g.CellW, g.CellH
	for r := 0; r < g.Rows-1; r++ {
		top := vals[r*cols : (r+1)*cols]
		bot := vals[(r+1)*cols : (r+2)*cols]
		c.y = float64(r) * g.CellH
		for col := 0; col < cols-1; col++ {
			c.tl, c.tr = top[col], top[col+1]
			c.bl, c.br = bot[col], bot[col+1]
			e := &edgeTable[CaseIndex(c.tl, c.tr, c.br, c.bl, threshold)]
			if e.n == 0 {
				continue
			}
			c.x = float64(col) * g.CellW
			for i := 0; i < e.n; i++ {
				x1, y1 := c.point(e.pairs[i][0], threshold)
				x2, y2 := c.point(e.pairs[i][1], threshold)
				dst = append(dst, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2, Level: level})
			}
		}
	}
	return dst
}
