package camera

import (
	"github.com/chewxy/math32"

	"bifrost-engine/internal/input"
)

const (
	// DefaultSpeed is the target speed of held movement keys, in units per second.
	DefaultSpeed = 80
	// DefaultDrag is the linear drag coefficient.
	DefaultDrag = 10
	// DefaultAngularSpeed is degrees of rotation per pointer unit at sensitivity 1.
	DefaultAngularSpeed = 0.05
	// DefaultAngularDrag is the fraction of angular velocity lost each frame.
	DefaultAngularDrag = 0.5

	// PitchLimit keeps the camera just short of looking straight up or down.
	PitchLimit = math32.Pi/2 - 0.01

	degToRad = math32.Pi / 180
)

// Fly is a free-flying first person camera. Euler holds pitch (X), yaw (Y) and roll (Z) in
// radians. Movement and look both run through a velocity with drag, so discrete key edges and
// pointer bursts become smooth motion.
type Fly struct {
	Position        Vec3
	Velocity        Vec3
	Euler           Vec3
	AngularVelocity Vec3

	Speed        float32
	Drag         float32
	AngularSpeed float32
	AngularDrag  float32
}

// NewFly returns a camera at the origin with the default tuning.
func NewFly() *Fly {
	return &Fly{
		Speed:        DefaultSpeed,
		Drag:         DefaultDrag,
		AngularSpeed: DefaultAngularSpeed,
		AngularDrag:  DefaultAngularDrag,
	}
}

// Look is the pointer input for one frame.
type Look struct {
	DeltaX, DeltaY float32
	Sensitivity    float32
	LockYaw        bool
	LockPitch      bool
	// Enabled is false while the cursor is free; pointer deltas are then ignored.
	Enabled bool
}

// controlAxes maps each control to its signed local direction.
var controlAxes = [input.ControlCount]Vec3{
	input.ControlW:     {0, 0, -1},
	input.ControlA:     {-1, 0, 0},
	input.ControlS:     {0, 0, 1},
	input.ControlD:     {1, 0, 0},
	input.ControlShift: {0, -1, 0},
	input.ControlSpace: {0, 1, 0},
}

// MoveDirection sums each control's held fraction along its axis in the yaw-only camera basis
// and normalizes the result.
func MoveDirection(factors [input.ControlCount]float32, yaw float32) Vec3 {
	var dir Vec3
	for c, f := range factors {
		dir = dir.Add(YawBasis(yaw, controlAxes[c].Scale(f)))
	}
	return dir.Normalize()
}

// Rotate applies the current angular velocity, clamps pitch, then feeds this frame's pointer
// deltas into the angular velocity.
func (c *Fly) Rotate(l Look) {
	c.Euler = c.Euler.Add(c.AngularVelocity)
	c.Euler.X = Clamp(c.Euler.X, -PitchLimit, PitchLimit)

	var dx, dy float32
	if l.Enabled {
		dx, dy = l.DeltaX, l.DeltaY
	}
	if l.LockYaw {
		dx = 0
	}
	if l.LockPitch {
		dy = 0
	}
	rot := l.Sensitivity * c.AngularSpeed * degToRad
	target := Vec3{-dy * rot, dx * rot, 0}
	c.AngularVelocity = c.AngularVelocity.Add(target.Sub(c.AngularVelocity.Scale(c.AngularDrag)))
}

// Move integrates position with the current velocity, then steers the velocity toward dir at
// Speed against linear drag.
func (c *Fly) Move(dt float32, dir Vec3) {
	c.Position = c.Position.Add(c.Velocity.Scale(dt))
	accel := dir.Scale(c.Speed).Sub(c.Velocity.Scale(c.Drag))
	c.Velocity = c.Velocity.Add(accel.Scale(dt))
}

// Update runs one frame. Movement uses the yaw from the start of the frame so that a rotation
// and a move in the same frame do not interact.
func (c *Fly) Update(dt float32, fi input.FrameInput, l Look) {
	yaw := c.Euler.Y
	c.Rotate(l)
	c.Move(dt, MoveDirection(fi.Factors(), yaw))
}

// Forward returns the unit view direction.
func (c *Fly) Forward() Vec3 {
	sp, cp := math32.Sincos(c.Euler.X)
	sy, cy := math32.Sincos(c.Euler.Y)
	return Vec3{sy * cp, sp, -cy * cp}
}

// Target returns a point one unit ahead of the camera.
func (c *Fly) Target() Vec3 {
	return c.Position.Add(c.Forward())
}
