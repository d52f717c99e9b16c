package core

import "time"

// maxFrameGap bounds the delta reported after a stall.
const maxFrameGap = 250 * time.Millisecond

// FrameClock measures wall-clock time between consecutive frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock constructs a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the milliseconds elapsed since the previous Tick. The first
// call returns 0.
func (f *FrameClock) Tick() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > maxFrameGap {
		delta = maxFrameGap
	}
	return float64(delta) / float64(time.Millisecond)
}

// Reset forgets the previous frame so the next Tick returns 0.
func (f *FrameClock) Reset() { f.last = time.Time{} }
