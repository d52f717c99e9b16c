package terrain

import (
	"math"
	"slices"
	"testing"

	"topoviz/internal/signal"
)

func TestCellSizeInverseToWidth(t *testing.T) {
	cases := []struct {
		width int
		want  float64
	}{
		{0, 8},
		{320, 8},
		{1280, 4.5},
		{1920, 3},
		{3840, 3},
	}
	for _, tc := range cases {
		if got := CellSize(tc.width); got != tc.want {
			t.Fatalf("CellSize(%d) = %v, want %v", tc.width, got, tc.want)
		}
	}
	if CellSize(800) <= CellSize(1600) {
		t.Fatal("cell size should shrink as width grows")
	}
}

func TestResizeContract(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	if !b.Resize(1280, 720) {
		t.Fatal("first resize should reallocate")
	}
	g := b.Grid()
	wantCols := int(math.Ceil(1280/4.5)) + 1
	wantRows := int(math.Ceil(720/4.5)) + 1
	if g.Cols != wantCols || g.Rows != wantRows {
		t.Fatalf("grid = %dx%d, want %dx%d", g.Cols, g.Rows, wantCols, wantRows)
	}
	if g.CellW != 4.5 || g.CellH != 4.5 {
		t.Fatalf("cell = %v", g.CellW)
	}
}

func TestResizeIdempotent(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	b.Resize(800, 600)
	first := b.Grid().Size()
	if b.Resize(800, 600) {
		t.Fatal("identical resize should not reallocate")
	}
	if second := b.Grid().Size(); second != first {
		t.Fatalf("dims changed: %v -> %v", first, second)
	}
}

func TestResizeDegenerateViewport(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	b.Resize(0, -5)
	g := b.Grid()
	if g.Cols != 1 || g.Rows != 1 {
		t.Fatalf("degenerate viewport produced %dx%d", g.Cols, g.Rows)
	}
	b.Build(signal.Control{Bass: 1, Mid: 1, Treble: 1}, 16)
	v := g.At(0, 0)
	if math.IsNaN(v) || g.Min != v || g.Max != v {
		t.Fatalf("1x1 build gave %v [%v, %v]", v, g.Min, g.Max)
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := NewBuilder(DefaultConfig())
	b := NewBuilder(DefaultConfig())
	a.ResizeGrid(40, 25, 4, 4)
	b.ResizeGrid(40, 25, 4, 4)
	synth := signal.NewSynth(3)
	for i := 0; i < 30; i++ {
		ctrl := synth.Next(16)
		a.Build(ctrl, 16)
		b.Build(ctrl, 16)
	}
	if !slices.Equal(a.Grid().Values(), b.Grid().Values()) {
		t.Fatal("identical inputs produced different grids")
	}
}

func TestBuildRangeMatchesScan(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	b.ResizeGrid(33, 21, 5, 5)
	g := b.Build(signal.Control{Bass: 0.6, Mid: 0.4, Treble: 0.8}, 16)
	min, max := g.Min, g.Max
	for _, v := range g.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite sample %v", v)
		}
	}
	sMin, sMax := g.ScanRange()
	if sMin != min || sMax != max {
		t.Fatalf("recorded range [%v, %v] differs from scan [%v, %v]", min, max, sMin, sMax)
	}
	if !(max > min) {
		t.Fatalf("expected a non-flat field, got [%v, %v]", min, max)
	}
}

func TestBuildLiftCentredOnGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeedBassMod = 0
	quiet := NewBuilder(cfg)
	loud := NewBuilder(cfg)
	quiet.ResizeGrid(21, 21, 4, 4)
	loud.ResizeGrid(21, 21, 4, 4)
	for i := 0; i < 20; i++ {
		quiet.Build(signal.Control{}, 16)
		loud.Build(signal.Control{Bass: 1}, 16)
	}
	if quiet.Time() != loud.Time() {
		t.Fatal("time should not depend on bass when SpeedBassMod is 0")
	}
	lift := loud.Smoothed().Bass * cfg.LiftGain
	if lift <= 0 {
		t.Fatal("smoothed bass should be positive")
	}

	centre := loud.Grid().At(10, 10) - quiet.Grid().At(10, 10)
	if math.Abs(centre-lift) > 1e-9 {
		t.Fatalf("centre lift = %v, want %v", centre, lift)
	}
	corner := loud.Grid().At(0, 0) - quiet.Grid().At(0, 0)
	wantCorner := lift * (1 - cfg.LiftFalloff*math.Sqrt(0.5))
	if math.Abs(corner-wantCorner) > 1e-9 {
		t.Fatalf("corner lift = %v, want %v", corner, wantCorner)
	}
}

func TestBuildSmoothsControl(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	b.ResizeGrid(4, 4, 4, 4)
	b.Build(signal.Control{Bass: 1, Treble: 1}, 16)
	s := b.Smoothed()
	if s.Bass <= 0 || s.Bass >= 0.2 {
		t.Fatalf("one frame of bass should be heavily smoothed, got %v", s.Bass)
	}
	if s.Treble != s.Bass {
		t.Fatalf("bands with equal input should match: %v vs %v", s.Treble, s.Bass)
	}
}

func TestBuildBassSpeedsUpTime(t *testing.T) {
	calm := NewBuilder(DefaultConfig())
	busy := NewBuilder(DefaultConfig())
	for i := 0; i < 60; i++ {
		calm.Build(signal.Control{}, 16)
		busy.Build(signal.Control{Bass: 1}, 16)
	}
	if !(busy.Time() > calm.Time()) {
		t.Fatalf("bass should advance time faster: %v vs %v", busy.Time(), calm.Time())
	}
	want := 60 * 0.016 * DefaultConfig().TimeRate
	if math.Abs(calm.Time()-want) > 1e-9 {
		t.Fatalf("calm time = %v, want %v", calm.Time(), want)
	}
}

func TestBuildSanitizesDelta(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	b.Build(signal.Control{}, -40)
	b.Build(signal.Control{}, math.NaN())
	if b.Time() != 0 {
		t.Fatalf("negative/NaN dt advanced time to %v", b.Time())
	}
	b.Build(signal.Control{}, 10000)
	want := 0.25 * DefaultConfig().TimeRate
	if math.Abs(b.Time()-want) > 1e-12 {
		t.Fatalf("large dt should clamp: time %v, want %v", b.Time(), want)
	}
}

func TestBuildEvaluationCount(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	b.ResizeGrid(10, 5, 4, 4)
	b.Build(signal.Control{}, 16)
	if got, want := b.Evaluations(), 10*5*DefaultConfig().Octaves; got != want {
		t.Fatalf("quiet evaluations = %d, want %d", got, want)
	}
	b.Build(signal.Control{Mid: 1, Treble: 1}, 16)
	if got, want := b.Evaluations(), 10*5*(DefaultConfig().Octaves+2); got != want {
		t.Fatalf("busy evaluations = %d, want %d", got, want)
	}
}

func TestSetConfigSwitchesNoise(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	cfg := b.Config()
	cfg.Noise = "simplex"
	b.SetConfig(cfg)
	if b.Config().Noise != "simplex" {
		t.Fatal("noise not switched")
	}
	cfg.Noise = "nonexistent"
	b.SetConfig(cfg)
	if b.Field() == nil {
		t.Fatal("unknown backend should fall back to a field")
	}
}
