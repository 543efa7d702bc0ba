package camera

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Len() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Array returns v as [x, y, z].
func (v Vec3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// YawBasis rotates local (x, y, z) about the world Y axis by yaw radians. Local -Z is forward
// and +X is right; positive yaw turns right.
func YawBasis(yaw float32, local Vec3) Vec3 {
	s, c := math32.Sincos(yaw)
	right := Vec3{c, 0, s}
	back := Vec3{-s, 0, c}
	return right.Scale(local.X).Add(Vec3{0, local.Y, 0}).Add(back.Scale(local.Z))
}
