package scene

import (
	"math"
	"testing"

	"topoviz/internal/contour"
	"topoviz/internal/core"
	"topoviz/internal/signal"
	"topoviz/internal/terrain"
)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func TestEndToEndBassDriven(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.Octaves = 8
	cfg.Levels = 12
	s := New(cfg)
	if got := s.Config().Octaves; got != 6 {
		t.Fatalf("octaves = %d, want clamp to 6", got)
	}

	const cols, rows, cell = 50, 30, 4.0
	s.ResizeGrid(cols, rows, cell, cell)
	maxX := float64(cols-1) * cell
	maxY := float64(rows-1) * cell
	limit := 2 * cols * rows

	ctrl := signal.Control{Bass: 1}
	var st FrameStats
	for frame := 0; frame < 60; frame++ {
		perLevel := map[int]int{}
		st = s.Step(ctrl, 16, contour.DrawerFunc(func(b contour.Batch) {
			if !finite(b.Threshold) || !finite(b.Norm) || b.Norm <= 0 || b.Norm >= 1 {
				t.Fatalf("frame %d batch %d has bad level tag %v/%v", frame, b.Index, b.Threshold, b.Norm)
			}
			for _, seg := range b.Segments {
				for _, v := range []float64{seg.X1, seg.Y1, seg.X2, seg.Y2} {
					if !finite(v) {
						t.Fatalf("frame %d: non-finite coordinate in %+v", frame, seg)
					}
				}
				if seg.X1 < 0 || seg.X2 < 0 || seg.X1 > maxX || seg.X2 > maxX ||
					seg.Y1 < 0 || seg.Y2 < 0 || seg.Y1 > maxY || seg.Y2 > maxY {
					t.Fatalf("frame %d: segment %+v leaves the canvas", frame, seg)
				}
			}
			perLevel[b.Index] += len(b.Segments)
		}))
		for lvl, n := range perLevel {
			if n > limit {
				t.Fatalf("frame %d level %d: %d segments exceeds %d", frame, lvl, n, limit)
			}
		}
		if st.Contours.Levels != 11 {
			t.Fatalf("frame %d drew %d levels, want 11", frame, st.Contours.Levels)
		}
	}

	if st.Frame != 60 || st.Size != (core.Size{W: cols, H: rows}) {
		t.Fatalf("final stats %+v", st)
	}
	if st.Smoothed.Bass < 0.95 {
		t.Fatalf("smoothed bass after ~1s of full input = %v", st.Smoothed.Bass)
	}
	if st.Contours.Segments == 0 {
		t.Fatal("expected contour segments")
	}
	if want := cols * rows * 6; st.Cost.NoiseEvals != want {
		t.Fatalf("noise evals = %d, want %d", st.Cost.NoiseEvals, want)
	}
	if want := 11 * (cols - 1) * (rows - 1); st.Cost.CellVisits != want {
		t.Fatalf("cell visits = %d, want %d", st.Cost.CellVisits, want)
	}
}

func TestResizeTwiceSameDims(t *testing.T) {
	s := New(terrain.DefaultConfig())
	s.Resize(1024, 768)
	first := s.Grid().Size()
	s.Resize(1024, 768)
	if s.Grid().Size() != first {
		t.Fatalf("resize not idempotent: %v vs %v", first, s.Grid().Size())
	}
}

func TestStepDeterministicAcrossScenes(t *testing.T) {
	a := New(terrain.DefaultConfig())
	b := New(terrain.DefaultConfig())
	a.Resize(320, 200)
	b.Resize(320, 200)
	sa, sb := signal.NewSynth(5), signal.NewSynth(5)
	for i := 0; i < 20; i++ {
		fa := a.Step(sa.Next(16), 16, nil)
		fb := b.Step(sb.Next(16), 16, nil)
		if fa.Min != fb.Min || fa.Max != fb.Max || fa.Contours.Segments != fb.Contours.Segments {
			t.Fatalf("frame %d diverged: %+v vs %+v", i, fa, fb)
		}
	}
}

func TestParameterSetters(t *testing.T) {
	s := New(terrain.DefaultConfig())
	if !s.SetIntParameter("levels", 30) || s.Config().Levels != terrain.MaxLevels {
		t.Fatal("levels should clamp to the max")
	}
	if !s.SetFloatParameter("speed", 2.5) || s.Config().Speed != 2.5 {
		t.Fatal("speed not applied")
	}
	if s.SetIntParameter("speed", 1) || s.SetFloatParameter("levels", 1) {
		t.Fatal("mismatched types should be rejected")
	}

	st := s.Step(signal.Control{}, 16, nil)
	if st.Contours.Levels != terrain.MaxLevels-1 {
		t.Fatalf("renderer did not pick up levels: %d", st.Contours.Levels)
	}

	p, ok := s.Parameters().Lookup("levels")
	if !ok || p.Value != "24" {
		t.Fatalf("snapshot levels = %+v", p)
	}
	if p, ok := s.Parameters().Lookup("noise"); !ok || p.Value != "perlin" {
		t.Fatalf("snapshot noise = %+v", p)
	}
	for _, c := range s.ParameterControls() {
		if _, ok := s.Parameters().Lookup(c.Key); !ok {
			t.Fatalf("control %q missing from snapshot", c.Key)
		}
	}
}

func TestResetRewinds(t *testing.T) {
	s := New(terrain.DefaultConfig())
	s.ResizeGrid(8, 8, 4, 4)
	for i := 0; i < 5; i++ {
		s.Step(signal.Control{Bass: 1}, 16, nil)
	}
	s.Reset()
	if s.Builder().Time() != 0 || s.Builder().Smoothed() != (signal.Control{}) {
		t.Fatal("Reset should rewind time and smoothing")
	}
	if st := s.Step(signal.Control{}, 0, nil); st.Frame != 1 {
		t.Fatalf("frame counter not reset: %d", st.Frame)
	}
}

func BenchmarkStep(b *testing.B) {
	s := New(terrain.DefaultConfig())
	s.Resize(1280, 720)
	ctrl := signal.Control{Bass: 0.5, Mid: 0.5, Treble: 0.5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Step(ctrl, 16, nil)
	}
}
