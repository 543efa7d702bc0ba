package input

import (
	"math"
	"runtime"
	"sync/atomic"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestHalfTransitionRatio(t *testing.T) {
	cases := []struct {
		count  uint32
		active bool
		want   float32
	}{
		{1, true, 0.5},
		{1, false, 0.5},
		{2, true, 2.0 / 3.0},
		{2, false, 1.0 / 3.0},
		{0, false, 0},
		{0, true, 1},
		{3, true, 0.5},
		{4, true, 3.0 / 5.0},
		{4, false, 2.0 / 5.0},
	}
	for _, c := range cases {
		if got := HalfTransitionRatio(c.count, c.active); !approx(got, c.want) {
			t.Errorf("HalfTransitionRatio(%d, %v): expected %v, got %v", c.count, c.active, c.want, got)
		}
	}
}

func press(keys ...Key) Snapshot {
	s := Snapshot{Focused: true}
	for _, k := range keys {
		s.KeyDown[k] = true
	}
	return s
}

func TestRecordCountsEdges(t *testing.T) {
	var acc Accumulator
	acc.Record(press(KeyW))
	acc.Record(press(KeyW))
	acc.Record(press())
	acc.Record(press(KeyW, KeySpace))

	fi := acc.Consume()
	if fi.Counts[ControlW] != 3 {
		t.Errorf("expected 3 W edges, got %d", fi.Counts[ControlW])
	}
	if fi.Counts[ControlSpace] != 1 {
		t.Errorf("expected 1 Space edge, got %d", fi.Counts[ControlSpace])
	}
	if !fi.States[ControlW] || fi.States[ControlA] {
		t.Errorf("unexpected states %v", fi.States)
	}
	if got := fi.Factor(ControlW); got != 0.5 {
		t.Errorf("expected W factor 0.5, got %v", got)
	}
	if got := fi.Factors()[ControlA]; got != 0 {
		t.Errorf("expected idle A factor 0, got %v", got)
	}
}

func TestRecordAccumulatesDeltasUntilReset(t *testing.T) {
	var acc Accumulator
	acc.Record(Snapshot{RawDeltaX: 1.5, RawDeltaY: -2})
	acc.Record(Snapshot{RawDeltaX: 0.5, RawDeltaY: -1})

	fi := acc.Consume()
	if fi.DeltaX != 2 || fi.DeltaY != -3 {
		t.Errorf("expected deltas (2,-3), got (%v,%v)", fi.DeltaX, fi.DeltaY)
	}

	acc.Record(Snapshot{RawDeltaX: 4})
	fi = acc.Consume()
	if fi.DeltaX != 4 || fi.DeltaY != 0 {
		t.Errorf("expected deltas reset before accumulating (4,0), got (%v,%v)", fi.DeltaX, fi.DeltaY)
	}
}

func TestResetIsAppliedOnNextRecord(t *testing.T) {
	var acc Accumulator
	for cycle := 1; cycle <= 50; cycle++ {
		for i := 0; i < cycle; i++ {
			acc.Record(press(KeyD))
			acc.Record(press())
		}
		fi := acc.Consume()
		if want := uint32(2 * cycle); fi.Counts[ControlD] != want {
			t.Fatalf("cycle %d: expected %d D edges, got %d", cycle, want, fi.Counts[ControlD])
		}
	}
}

// A Consume that runs before the input side saw the previous reset request reads the same
// counters again. The staleness lasts one cycle: the next Record honors the request.
func TestMissedResetIsStaleForOneCycle(t *testing.T) {
	var acc Accumulator
	acc.Record(press(KeyA))
	acc.Record(press())

	first := acc.Consume()
	second := acc.Consume()
	if first.Counts[ControlA] != 2 || second.Counts[ControlA] != 2 {
		t.Fatalf("expected both reads to see 2 edges, got %d and %d", first.Counts[ControlA], second.Counts[ControlA])
	}

	acc.Record(press(KeyA))
	third := acc.Consume()
	if third.Counts[ControlA] != 1 {
		t.Errorf("expected reset then one new edge, got %d", third.Counts[ControlA])
	}
}

// The input goroutine toggles W on every tick while the simulation goroutine consumes once in
// the middle. At most the edge recorded by a Record already in flight during Consume may be
// lost, and nothing may be counted twice.
func TestConcurrentResetDropsAtMostOneTick(t *testing.T) {
	const ticks = 20000

	var acc Accumulator
	var produced, records atomic.Int64
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		var snap Snapshot
		for i := 0; i < ticks; i++ {
			snap.KeyDown[KeyW] = !snap.KeyDown[KeyW]
			acc.Record(snap)
			produced.Add(1)
			records.Add(1)
		}
		for {
			select {
			case <-stop:
				return
			default:
				acc.Record(snap)
				records.Add(1)
				runtime.Gosched()
			}
		}
	}()

	for produced.Load() < ticks/4 {
		runtime.Gosched()
	}
	first := acc.Consume()

	r0 := records.Load()
	for records.Load() < r0+2 || produced.Load() < ticks {
		runtime.Gosched()
	}
	close(stop)
	<-done

	second := acc.Consume()
	total := int64(first.Counts[ControlW]) + int64(second.Counts[ControlW])
	if total > ticks {
		t.Errorf("counted %d edges, more than the %d produced", total, ticks)
	}
	if total < ticks-1 {
		t.Errorf("counted %d edges, dropped more than one tick of %d", total, ticks)
	}
}

func TestSamplerCaptureAndRelease(t *testing.T) {
	var acc Accumulator
	settings := NewSettings(1)
	var d Display
	d.OverlayVisible.Store(true)
	d.MouseVisible.Store(true)
	s := NewSampler(&acc, settings)

	snap := press()
	snap.MouseRightDown = true
	s.Sample(snap, &d)
	if !settings.FirstPerson.Load() || d.OverlayVisible.Load() || d.MouseVisible.Load() {
		t.Fatal("expected right click to capture the mouse and hide the overlay")
	}

	s.Sample(press(KeyEscape), &d)
	if settings.FirstPerson.Load() || !d.OverlayVisible.Load() || !d.MouseVisible.Load() {
		t.Fatal("expected escape to free the mouse and show the overlay")
	}
}

func TestSamplerFocusLossShowsOverlay(t *testing.T) {
	var acc Accumulator
	settings := NewSettings(1)
	var d Display
	s := NewSampler(&acc, settings)
	settings.FirstPerson.Store(true)

	s.Sample(press(), &d)
	if d.OverlayVisible.Load() {
		t.Fatal("overlay must stay hidden while focused")
	}

	unfocused := press()
	unfocused.Focused = false
	s.Sample(unfocused, &d)
	if !d.OverlayVisible.Load() || settings.FirstPerson.Load() {
		t.Fatal("expected focus loss to show the overlay and leave first person")
	}

	// Staying unfocused is not another edge.
	d.OverlayVisible.Store(false)
	s.Sample(unfocused, &d)
	if d.OverlayVisible.Load() {
		t.Error("expected no change while focus stays lost")
	}
}

func TestSamplerToggleOnRisingEdgeOnly(t *testing.T) {
	var acc Accumulator
	settings := NewSettings(1)
	var d Display
	s := NewSampler(&acc, settings)

	s.Sample(press(KeyF5), &d)
	if !d.OverlayVisible.Load() {
		t.Fatal("expected first F5 press to show the overlay")
	}
	s.Sample(press(KeyF5), &d)
	s.Sample(press(KeyF5), &d)
	if !d.OverlayVisible.Load() {
		t.Fatal("holding F5 must not toggle again")
	}
	s.Sample(press(), &d)
	s.Sample(press(KeyF5), &d)
	if d.OverlayVisible.Load() || !settings.FirstPerson.Load() {
		t.Fatal("expected second F5 press to hide the overlay and enter first person")
	}
}

func TestFloat32(t *testing.T) {
	var f Float32
	if f.Load() != 0 {
		t.Errorf("expected zero value 0, got %v", f.Load())
	}
	f.Store(-3.25)
	if f.Load() != -3.25 {
		t.Errorf("expected -3.25, got %v", f.Load())
	}
}

func TestControlNames(t *testing.T) {
	if ControlShift.String() != "Shift" || Control(42).String() != "unknown" {
		t.Error("unexpected control names")
	}
	if ControlSpace.Key() != KeySpace {
		t.Error("space control must map to the space key")
	}
}

func TestPresses(t *testing.T) {
	cases := []struct {
		count uint32
		down  bool
		want  uint32
	}{
		{0, false, 0},
		{0, true, 0},
		{1, true, 1},  // up -> down
		{1, false, 0}, // down -> up
		{2, false, 1}, // down, up
		{3, true, 2},  // down, up, down
		{4, true, 2},  // up, down, up, down from held
	}
	for _, c := range cases {
		var fi FrameInput
		fi.Counts[ControlSpace] = c.count
		fi.States[ControlSpace] = c.down
		if got := fi.Presses(ControlSpace); got != c.want {
			t.Errorf("Presses(count=%d, down=%v): expected %d, got %d", c.count, c.down, c.want, got)
		}
	}
}
