package physics

import "golang.org/x/exp/constraints"

// DefaultGravity pulls toward -Y.
var DefaultGravity = [3]float32{0, -9.8, 0}

// maxStep bounds a single integration step; larger dt values are split.
const maxStep = 1.0 / 30

// World holds a set of bodies and runs a simple 3D physics step: gravity, integration, AABB collision.
type World struct {
	Gravity [3]float32
	Bodies  []*Body
	// Paused makes Step a no-op.
	Paused bool
}

// NewWorld returns an empty world with DefaultGravity.
func NewWorld() *World {
	return &World{Gravity: DefaultGravity}
}

// AddBody appends a body to the world. Order is preserved for syncing with scene objects.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Reset removes every body. Gravity and Paused are kept.
func (w *World) Reset() {
	w.Bodies = nil
}

// Dynamic returns the number of non-static bodies.
func (w *World) Dynamic() int {
	n := 0
	for _, b := range w.Bodies {
		if !b.Static {
			n++
		}
	}
	return n
}

func clamp[T constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Step advances the simulation by dt seconds: gravity, integration, then pairwise AABB
// resolution along the axis of minimum penetration. Steps longer than 1/30 s are split.
func (w *World) Step(dt float32) {
	if w.Paused || dt <= 0 {
		return
	}
	for dt > 0 {
		h := clamp(dt, 0, maxStep)
		w.step(h)
		dt -= h
	}
}

func (w *World) step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Resting = false
		for i := 0; i < 3; i++ {
			b.Velocity[i] += w.Gravity[i] * dt
			b.Position[i] += b.Velocity[i] * dt
		}
	}

	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			depth, axis := penetration(bi.Bounds(), bj.Bounds())
			if axis < 0 {
				continue
			}
			w.separate(bi, bj, depth, axis)
		}
	}
}

// separate pushes bi toward -axis and bj toward +axis, or the reverse when bi is above or
// ahead of bj, splitting the correction by mass. Static bodies never move.
func (w *World) separate(bi, bj *Body, depth float32, axis int) {
	sign := float32(1)
	if bi.Position[axis] > bj.Position[axis] {
		sign = -1
	}
	var moveI, moveJ float32
	switch {
	case bi.Static:
		moveJ = depth
	case bj.Static:
		moveI = -depth
	default:
		total := bi.Mass + bj.Mass
		moveI = -depth * (bj.Mass / total)
		moveJ = depth * (bi.Mass / total)
	}
	bi.Position[axis] += sign * moveI
	bj.Position[axis] += sign * moveJ
	if !bi.Static {
		bi.Velocity[axis] = 0
	}
	if !bj.Static {
		bj.Velocity[axis] = 0
	}
	if axis == 1 {
		upper := bj
		if bi.Position[1] > bj.Position[1] {
			upper = bi
		}
		if !upper.Static {
			upper.Resting = true
		}
	}
}
