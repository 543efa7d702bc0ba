package physics

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestGravityIntegratesVelocityThenPosition(t *testing.T) {
	w := NewWorld()
	b := NewBody([3]float32{0, 10, 0}, [3]float32{1, 1, 1}, 1, false)
	w.AddBody(b)

	w.Step(0.01)
	if !near(b.Velocity[1], -0.098) {
		t.Errorf("expected vy -0.098, got %v", b.Velocity[1])
	}
	if !near(b.Position[1], 10-0.00098) {
		t.Errorf("expected y 9.99902, got %v", b.Position[1])
	}
}

func TestBoxComesToRestOnStaticFloor(t *testing.T) {
	w := NewWorld()
	floor := NewBody([3]float32{0, -0.5, 0}, [3]float32{20, 1, 20}, 0, true)
	box := NewBody([3]float32{0, 3, 0}, [3]float32{1, 1, 1}, 1, false)
	w.AddBody(floor)
	w.AddBody(box)

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60)
	}
	if floor.Position != [3]float32{0, -0.5, 0} {
		t.Errorf("expected static floor to stay put, got %v", floor.Position)
	}
	if !near(box.Position[1], 0.5) {
		t.Errorf("expected box resting at y 0.5, got %v", box.Position[1])
	}
	if !box.Resting {
		t.Error("expected box to be marked resting")
	}
}

func TestStackedBoxesSeparate(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewBody([3]float32{0, -0.5, 0}, [3]float32{20, 1, 20}, 0, true))
	lower := NewBody([3]float32{0, 0.5, 0}, [3]float32{1, 1, 1}, 1, false)
	upper := NewBody([3]float32{0, 1.2, 0}, [3]float32{1, 1, 1}, 1, false)
	w.AddBody(lower)
	w.AddBody(upper)

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60)
	}
	if upper.Position[1] <= lower.Position[1] {
		t.Fatalf("expected upper box above lower, got %v <= %v", upper.Position[1], lower.Position[1])
	}
	if lower.Bounds().Overlaps(upper.Bounds()) && upper.Position[1]-lower.Position[1] < 0.9 {
		t.Errorf("expected boxes mostly separated, got gap %v", upper.Position[1]-lower.Position[1])
	}
}

func TestPausedAndReset(t *testing.T) {
	w := NewWorld()
	b := NewBody([3]float32{0, 5, 0}, [3]float32{1, 1, 1}, 1, false)
	w.AddBody(b)
	w.Paused = true
	w.Step(1)
	if b.Position[1] != 5 {
		t.Errorf("expected no motion while paused, got %v", b.Position[1])
	}
	if w.Dynamic() != 1 {
		t.Errorf("expected one dynamic body, got %d", w.Dynamic())
	}
	w.Reset()
	if len(w.Bodies) != 0 || !w.Paused {
		t.Errorf("expected empty paused world, got %d bodies paused=%v", len(w.Bodies), w.Paused)
	}
}

func TestLongStepIsSplit(t *testing.T) {
	a := NewWorld()
	ba := NewBody([3]float32{0, 100, 0}, [3]float32{1, 1, 1}, 1, false)
	a.AddBody(ba)
	a.Step(0.1)

	b := NewWorld()
	bb := NewBody([3]float32{0, 100, 0}, [3]float32{1, 1, 1}, 1, false)
	b.AddBody(bb)
	for i := 0; i < 3; i++ {
		b.Step(0.1 / 3)
	}
	if !near(ba.Position[1], bb.Position[1]) {
		t.Errorf("expected split step to match %v, got %v", bb.Position[1], ba.Position[1])
	}
}

func TestOverlapsAndPenetration(t *testing.T) {
	a := AABB{Min: [3]float32{0, 0, 0}, Max: [3]float32{1, 1, 1}}
	b := AABB{Min: [3]float32{0.5, 0.9, 0}, Max: [3]float32{1.5, 1.9, 1}}
	if !a.Overlaps(b) {
		t.Fatal("expected overlap")
	}
	depth, axis := penetration(a, b)
	if axis != 1 || !near(depth, 0.1) {
		t.Errorf("expected Y penetration 0.1, got axis %d depth %v", axis, depth)
	}
	c := AABB{Min: [3]float32{1, 0, 0}, Max: [3]float32{2, 1, 1}}
	if a.Overlaps(c) {
		t.Error("expected touching boxes not to overlap")
	}
}
