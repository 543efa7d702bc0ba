package physics

// Body is a 3D rigid body with position, velocity and an axis-aligned box sized by Scale.
// Static bodies do not move and are not affected by gravity.
type Body struct {
	Position [3]float32
	Velocity [3]float32
	Scale    [3]float32
	Mass     float32
	Static   bool
	// Resting is set when the last step ended with the body supported from below.
	Resting bool
}

// NewBody returns a body with the given position and scale. Velocity is zero.
// mass is used for collision response; values <= 0 become 1.
func NewBody(position, scale [3]float32, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Position: position,
		Scale:    scale,
		Mass:     mass,
		Static:   static,
	}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max [3]float32
}

// Bounds returns the body's box: centered on Position with half extents Scale/2. A zero scale
// axis counts as 1.
func (b *Body) Bounds() AABB {
	var box AABB
	for i := 0; i < 3; i++ {
		s := b.Scale[i]
		if s == 0 {
			s = 1
		}
		box.Min[i] = b.Position[i] - s*0.5
		box.Max[i] = b.Position[i] + s*0.5
	}
	return box
}

// Overlaps reports whether a and c intersect with a positive volume.
func (a AABB) Overlaps(c AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Max[i] <= c.Min[i] || c.Max[i] <= a.Min[i] {
			return false
		}
	}
	return true
}

// penetration returns the overlap depth and axis (0=X, 1=Y, 2=Z) of minimum penetration.
// If there is no overlap, it returns (0, -1).
func penetration(a, b AABB) (depth float32, axis int) {
	axis = -1
	for i := 0; i < 3; i++ {
		overlap := min(a.Max[i], b.Max[i]) - max(a.Min[i], b.Min[i])
		if overlap <= 0 {
			return 0, -1
		}
		if axis < 0 || overlap < depth {
			depth, axis = overlap, i
		}
	}
	return depth, axis
}
