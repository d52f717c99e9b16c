package signal

import (
	"math"
	"testing"
)

func TestControlClamped(t *testing.T) {
	c := Control{Bass: 1.4, Mid: -0.2, Treble: math.NaN(), Volume: 0.5}.Clamped()
	want := Control{Bass: 1, Mid: 0, Treble: 0, Volume: 0.5}
	if c != want {
		t.Fatalf("Clamped = %+v, want %+v", c, want)
	}
}

func TestSmootherTimeConstant(t *testing.T) {
	s := Smoother{Tau: 200}
	got := s.Update(1, 200)
	want := 1 - math.Exp(-1)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("after one tau got %f, want %f", got, want)
	}
}

func TestSmootherStepInvariance(t *testing.T) {
	coarse := Smoother{Tau: 200}
	fine := Smoother{Tau: 200}
	coarse.Update(1, 160)
	for i := 0; i < 10; i++ {
		fine.Update(1, 16)
	}
	if math.Abs(coarse.Value()-fine.Value()) > 1e-12 {
		t.Fatalf("smoothing depends on frame slicing: %f vs %f", coarse.Value(), fine.Value())
	}
}

func TestSmootherIgnoresNonPositiveDelta(t *testing.T) {
	s := Smoother{Tau: 200}
	s.Update(1, 50)
	v := s.Value()
	s.Update(0, 0)
	s.Update(0, -16)
	s.Update(0, math.NaN())
	if s.Value() != v {
		t.Fatalf("value changed without elapsed time: %f -> %f", v, s.Value())
	}
}

func TestSmoothedSuppressesJitter(t *testing.T) {
	sm := NewSmoothed(250)
	var maxStep float64
	prev := 0.0
	for i := 0; i < 600; i++ {
		raw := 0.0
		if i%2 == 0 {
			raw = 1
		}
		out := sm.Update(Control{Bass: raw}, 16)
		if i > 0 {
			maxStep = math.Max(maxStep, math.Abs(out.Bass-prev))
		}
		prev = out.Bass
	}
	if maxStep > 0.1 {
		t.Fatalf("smoothed output steps by %f per frame on alternating input", maxStep)
	}
	if math.Abs(prev-0.5) > 0.1 {
		t.Fatalf("smoothed output settled at %f, want about 0.5", prev)
	}
}

func TestSmoothedConverges(t *testing.T) {
	sm := NewSmoothed(150)
	target := Control{Bass: 1, Mid: 0.5, Treble: 0.25, Volume: 0.75}
	var out Control
	for i := 0; i < 200; i++ {
		out = sm.Update(target, 16)
	}
	if math.Abs(out.Bass-1) > 1e-6 || math.Abs(out.Mid-0.5) > 1e-6 || math.Abs(out.Treble-0.25) > 1e-6 || math.Abs(out.Volume-0.75) > 1e-6 {
		t.Fatalf("did not converge: %+v", out)
	}
	sm.Reset()
	if sm.Value() != (Control{}) {
		t.Fatalf("Reset left %+v", sm.Value())
	}
}

func TestSynthDeterministicAndBounded(t *testing.T) {
	a := NewSynth(11)
	b := NewSynth(11)
	sawKick := false
	for i := 0; i < 600; i++ {
		ca, cb := a.Next(16), b.Next(16)
		if ca != cb {
			t.Fatalf("frame %d differs: %+v vs %+v", i, ca, cb)
		}
		for _, v := range []float64{ca.Bass, ca.Mid, ca.Treble, ca.Volume} {
			if v < 0 || v > 1 {
				t.Fatalf("frame %d out of range: %+v", i, ca)
			}
		}
		if ca.Bass > 0.7 {
			sawKick = true
		}
	}
	if !sawKick {
		t.Fatal("expected at least one bass kick in ten seconds at 120 BPM")
	}
}
