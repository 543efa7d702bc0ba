package input

import "sync/atomic"

// Accumulator collects input between two simulation frames. The input goroutine calls Record
// on every poll; the simulation goroutine calls Consume once per frame.
//
// Field ownership:
//   - counts, states: written only by Record. Consume only reads them.
//   - clearRequested: set by Consume, cleared by Record.
//   - deltaX, deltaY: atomic cross-context accumulators, written by Record.
//
// All fields are atomics so that neither side tears a value, but the reset hand-off is not a
// transaction. Edges recorded after Consume reads the counters and before Record acts on the
// request are dropped, and a Consume that runs before Record saw the previous request reads the
// same counters again. Record runs far more often than Consume, so either effect is limited to
// one frame.
type Accumulator struct {
	counts         [ControlCount]atomic.Uint32
	states         [ControlCount]atomic.Bool
	clearRequested atomic.Bool
	deltaX         Float32
	deltaY         Float32
}

// FrameInput is what the simulation sees of one frame's input.
type FrameInput struct {
	Counts [ControlCount]uint32
	States [ControlCount]bool
	DeltaX float32
	DeltaY float32
}

// Record folds one poll into the accumulator. It first honors a pending clear request.
func (a *Accumulator) Record(s Snapshot) {
	if a.clearRequested.Load() {
		for i := range a.counts {
			a.counts[i].Store(0)
		}
		a.clearRequested.Store(false)
		a.deltaX.Store(0)
		a.deltaY.Store(0)
	}

	a.deltaX.Store(s.RawDeltaX + a.deltaX.Load())
	a.deltaY.Store(s.RawDeltaY + a.deltaY.Load())

	for c := Control(0); c < ControlCount; c++ {
		down := s.KeyDown[c.Key()]
		if a.states[c].Load() != down {
			a.counts[c].Add(1)
			a.states[c].Store(down)
		}
	}
}

// Consume reads the counters, asks the input side to reset them, and returns the frame's input.
func (a *Accumulator) Consume() FrameInput {
	var fi FrameInput
	fi.DeltaX = a.deltaX.Load()
	fi.DeltaY = a.deltaY.Load()
	for c := range a.counts {
		fi.Counts[c] = a.counts[c].Load()
	}

	a.clearRequested.Store(true)

	for c := range a.states {
		fi.States[c] = a.states[c].Load()
	}
	return fi
}

// Factor returns how much of the frame control c was held, in [0, 1].
func (fi FrameInput) Factor(c Control) float32 {
	return HalfTransitionRatio(fi.Counts[c], fi.States[c])
}

// Presses returns how many times c went down since the last reset, derived from the transition
// count and the current state.
func (fi FrameInput) Presses(c Control) uint32 {
	n := fi.Counts[c] / 2
	if fi.States[c] && fi.Counts[c]%2 == 1 {
		n++
	}
	return n
}

// Factors returns Factor for every control.
func (fi FrameInput) Factors() [ControlCount]float32 {
	var out [ControlCount]float32
	for c := Control(0); c < ControlCount; c++ {
		out[c] = fi.Factor(c)
	}
	return out
}

// HalfTransitionRatio estimates the fraction of a frame a control was active from the number
// of press/release edges seen during the frame and the state at the end of it.
//
// An odd count means the control changed state overall, so it is credited half the frame.
// An even count splits the frame into count+1 intervals; the control is credited the intervals
// it could have been held in given its final state.
func HalfTransitionRatio(count uint32, active bool) float32 {
	if count%2 != 0 {
		return 0.5
	}
	top := count >> 1
	bottom := count + 1
	if active {
		top = bottom - top
	}
	return float32(top) / float32(bottom)
}
