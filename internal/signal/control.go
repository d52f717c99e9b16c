// Package signal holds the per-frame control signal and its smoothing.
package signal

import "math"

// Control carries band energies produced by upstream audio analysis. Each
// field is expected in [0, 1].
type Control struct {
	Bass   float64
	Mid    float64
	Treble float64
	Volume float64
}

// Clamped returns c with every band limited to [0, 1]. NaN becomes 0.
func (c Control) Clamped() Control {
	return Control{
		Bass:   unit(c.Bass),
		Mid:    unit(c.Mid),
		Treble: unit(c.Treble),
		Volume: unit(c.Volume),
	}
}

func unit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smoother is a first-order exponential follower with a time constant.
type Smoother struct {
	Tau   float64 // milliseconds
	value float64
}

// Update moves the smoothed value toward target over dtMillis and returns it.
func (s *Smoother) Update(target, dtMillis float64) float64 {
	if !(dtMillis > 0) {
		return s.value
	}
	if !(s.Tau > 0) {
		s.value = target
		return s.value
	}
	alpha := 1 - math.Exp(-dtMillis/s.Tau)
	s.value += alpha * (target - s.value)
	return s.value
}

// Value returns the current smoothed value.
func (s *Smoother) Value() float64 { return s.value }

// Reset sets the smoothed value directly.
func (s *Smoother) Reset(v float64) { s.value = v }

// Smoothed follows all four bands of a Control independently.
type Smoothed struct {
	bass, mid, treble, volume Smoother
}

// NewSmoothed returns a follower whose bands share the time constant tauMillis.
func NewSmoothed(tauMillis float64) *Smoothed {
	s := &Smoothed{}
	s.SetTau(tauMillis)
	return s
}

// SetTau changes the time constant of every band without resetting state.
func (s *Smoothed) SetTau(tauMillis float64) {
	s.bass.Tau = tauMillis
	s.mid.Tau = tauMillis
	s.treble.Tau = tauMillis
	s.volume.Tau = tauMillis
}

// Update feeds raw input observed over dtMillis and returns the smoothed bands.
func (s *Smoothed) Update(raw Control, dtMillis float64) Control {
	raw = raw.Clamped()
	return Control{
		Bass:   s.bass.Update(raw.Bass, dtMillis),
		Mid:    s.mid.Update(raw.Mid, dtMillis),
		Treble: s.treble.Update(raw.Treble, dtMillis),
		Volume: s.volume.Update(raw.Volume, dtMillis),
	}
}

// Value returns the current smoothed bands.
func (s *Smoothed) Value() Control {
	return Control{
		Bass:   s.bass.Value(),
		Mid:    s.mid.Value(),
		Treble: s.treble.Value(),
		Volume: s.volume.Value(),
	}
}

// Reset zeroes every band.
func (s *Smoothed) Reset() {
	s.bass.Reset(0)
	s.mid.Reset(0)
	s.treble.Reset(0)
	s.volume.Reset(0)
}
