package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"topoviz/internal/terrain"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 4, 8,,12 ")
	if err != nil {
		t.Fatalf("parseInts: %v", err)
	}
	if !slices.Equal(got, []int{4, 8, 12}) {
		t.Fatalf("unexpected values %v", got)
	}
	if _, err := parseInts("4,x"); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
	if _, err := parseInts(" , "); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestCombinations(t *testing.T) {
	sets := combinations([]int{6, 12}, []int{2, 4, 6}, []int{480})
	if len(sets) != 6 {
		t.Fatalf("expected 6 combinations, got %d", len(sets))
	}
	if sets[0] != (paramSet{levels: 6, octaves: 2, width: 480}) {
		t.Fatalf("unexpected first set %+v", sets[0])
	}
}

func TestSweepCostScalesWithLevels(t *testing.T) {
	sets := combinations([]int{4, 16}, []int{2}, []int{240})
	all := sweep(terrain.DefaultConfig(), sets, 2, 3, 0.5)
	if len(all) != 2 {
		t.Fatalf("expected 2 results, got %d", len(all))
	}
	byLevels := map[int]scenarioResult{}
	for _, r := range all {
		byLevels[r.params.levels] = r
	}
	lo, hi := byLevels[4], byLevels[16]
	if lo.cols == 0 || lo.cols != hi.cols || lo.rows != hi.rows {
		t.Fatalf("grid dims should match across levels: %+v vs %+v", lo, hi)
	}
	if lo.noiseEvals != hi.noiseEvals {
		t.Fatalf("noise cost should not depend on levels: %d vs %d", lo.noiseEvals, hi.noiseEvals)
	}
	cells := (lo.cols - 1) * (lo.rows - 1)
	if lo.cellVisits != 3*cells || hi.cellVisits != 15*cells {
		t.Fatalf("cell visits should be (levels-1)*cells: got %d and %d for %d cells", lo.cellVisits, hi.cellVisits, cells)
	}

	var buf bytes.Buffer
	printResults(&buf, all)
	if !strings.Contains(buf.String(), "levels=16 octaves=2 width=240") {
		t.Fatalf("missing scenario row in %q", buf.String())
	}
}
