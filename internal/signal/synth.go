package signal

import (
	"math"

	"topoviz/internal/core"
)

// Synth produces a plausible, reproducible Control stream for hosts that run
// without an audio analyser. Bands are slow sine mixes plus seeded jitter,
// and the bass band receives decaying kicks at a configurable tempo.
type Synth struct {
	BPM       float64
	KickDecay float64 // milliseconds
	Jitter    float64

	rng   *core.RNG
	clock float64 // milliseconds
	kick  float64
	beat  float64
}

// NewSynth returns a generator for seed at 120 BPM.
func NewSynth(seed int64) *Synth {
	return &Synth{
		BPM:       120,
		KickDecay: 180,
		Jitter:    0.08,
		rng:       core.NewRNG(seed),
	}
}

// Next advances the generator by dtMillis and returns the raw control.
func (s *Synth) Next(dtMillis float64) Control {
	if dtMillis < 0 || math.IsNaN(dtMillis) {
		dtMillis = 0
	}
	s.clock += dtMillis

	if s.BPM > 0 {
		period := 60000 / s.BPM
		s.beat += dtMillis
		for s.beat >= period {
			s.beat -= period
			s.kick = s.rng.Range(0.7, 1)
		}
	}
	if s.KickDecay > 0 {
		s.kick *= math.Exp(-dtMillis / s.KickDecay)
	}

	sec := s.clock / 1000
	mid := 0.45 + 0.35*math.Sin(sec*0.9) + 0.1*math.Sin(sec*2.3+1.1)
	treble := 0.3 + 0.25*math.Sin(sec*3.7+0.4)*math.Sin(sec*0.31)
	bass := 0.15 + 0.85*s.kick

	c := Control{
		Bass:   bass + s.jitter(),
		Mid:    mid + s.jitter(),
		Treble: treble + s.jitter(),
	}
	c.Volume = (c.Bass + c.Mid + c.Treble) / 3
	return c.Clamped()
}

func (s *Synth) jitter() float64 {
	if s.Jitter <= 0 {
		return 0
	}
	return s.rng.Range(-s.Jitter, s.Jitter)
}
