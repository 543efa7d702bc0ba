// Package timing measures frame phases in clock ticks and publishes one snapshot per frame.
package timing

import (
	"sync/atomic"
	"time"
)

// Clock is a monotonic tick source. Frequency is the number of ticks per second.
type Clock interface {
	Now() uint64
	Frequency() uint64
}

// Elapsed returns the seconds between the tick samples begin and end for a clock running at freq
// ticks per second. The result is negative when end precedes begin. A zero frequency yields 0.
func Elapsed(begin, end, freq uint64) float32 {
	if freq == 0 {
		return 0
	}
	return float32(float64(int64(end-begin)) / float64(freq))
}

// SystemClock counts nanoseconds since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose zero tick is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns nanoseconds since the clock was created.
func (c *SystemClock) Now() uint64 {
	return uint64(time.Since(c.start))
}

// Frequency returns 1e9 (nanosecond ticks).
func (c *SystemClock) Frequency() uint64 {
	return uint64(time.Second)
}

// FrameTiming holds the raw tick samples of one finished frame plus the measured interval between
// the last two displayed frames. A published FrameTiming is never modified.
type FrameTiming struct {
	BeginTime       uint64
	UpdateEndTime   uint64
	GPUEndTime      uint64
	MaybeVblankTime uint64
	// VisibleTime is how long the previous frame stayed on screen, in seconds.
	VisibleTime float32
	Frequency   uint64
	Index       uint64
}

// CPUTime is the CPU logic update portion of the frame in seconds.
func (t *FrameTiming) CPUTime() float32 {
	return Elapsed(t.BeginTime, t.UpdateEndTime, t.Frequency)
}

// CPUGPUTime is the total time to render the frame: the CPU update plus the GPU render time.
func (t *FrameTiming) CPUGPUTime() float32 {
	return Elapsed(t.BeginTime, t.GPUEndTime, t.Frequency)
}

// FPS is the reciprocal of VisibleTime, or 0 before any frame was displayed.
func (t *FrameTiming) FPS() float32 {
	if t.VisibleTime <= 0 {
		return 0
	}
	return 1 / t.VisibleTime
}

// PresentLatency is the phase shift of the game signal to the (possible) vertical blank, in
// seconds. Half of the input collection period is subtracted. Negative values mean the vblank
// leads the game signal.
func (t *FrameTiming) PresentLatency() float32 {
	collectPeriod := t.VisibleTime / 2
	return Elapsed(t.BeginTime, t.MaybeVblankTime, t.Frequency) - collectPeriod/2
}

// Publisher hands the latest FrameTiming from the frame loop to any reader.
type Publisher struct {
	latest atomic.Pointer[FrameTiming]
}

// Publish stores a copy of t as the latest snapshot.
func (p *Publisher) Publish(t FrameTiming) {
	p.latest.Store(&t)
}

// Latest returns the last published snapshot, or nil when no frame has finished yet.
func (p *Publisher) Latest() *FrameTiming {
	return p.latest.Load()
}
