package core

import (
	"math"
	"testing"
)

func TestScalarGridClampsDimensions(t *testing.T) {
	g := NewScalarGrid(0, -3, 0, math.NaN())
	if g.Cols != 1 || g.Rows != 1 {
		t.Fatalf("dims = %dx%d, want 1x1", g.Cols, g.Rows)
	}
	if g.CellW != 1 || g.CellH != 1 {
		t.Fatalf("cell = %vx%v, want 1x1", g.CellW, g.CellH)
	}
	if len(g.Values()) != 1 {
		t.Fatalf("len = %d, want 1", len(g.Values()))
	}
}

func TestScalarGridReshapeKeepsBuffer(t *testing.T) {
	g := NewScalarGrid(4, 3, 2, 2)
	g.Set(1, 2, 7)
	before := &g.Values()[0]

	if g.Reshape(4, 3, 5, 5) {
		t.Fatal("same dimensions should not reallocate")
	}
	if &g.Values()[0] != before {
		t.Fatal("buffer identity changed on idempotent reshape")
	}
	if g.At(1, 2) != 7 || g.CellW != 5 {
		t.Fatal("contents or cell size not preserved")
	}

	if !g.Reshape(5, 3, 5, 5) {
		t.Fatal("new dimensions should reallocate")
	}
	if len(g.Values()) != 15 || g.At(1, 2) != 0 {
		t.Fatal("reallocated grid should be fresh")
	}
}

func TestScalarGridScanRange(t *testing.T) {
	g := NewScalarGrid(3, 2, 1, 1)
	copy(g.Values(), []float64{0.5, -2, 3, 1, 0, 2.5})
	min, max := g.ScanRange()
	if min != -2 || max != 3 || g.Min != -2 || g.Max != 3 {
		t.Fatalf("range = [%v, %v]", min, max)
	}
	g.Fill(4)
	if g.Min != 4 || g.Max != 4 || g.At(2, 1) != 4 {
		t.Fatal("Fill should flatten samples and range")
	}
}

func TestScalarGridPoint(t *testing.T) {
	g := NewScalarGrid(10, 10, 4, 3)
	x, y := g.Point(2, 5)
	if x != 8 || y != 15 {
		t.Fatalf("Point(2, 5) = (%v, %v)", x, y)
	}
	if g.Index(2, 5) != 52 {
		t.Fatalf("Index(2, 5) = %d", g.Index(2, 5))
	}
}
