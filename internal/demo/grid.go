package demo

import (
	"bifrost-engine/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

var (
	gridMinorColor = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajorColor = rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisXColor     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisYColor     = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZColor     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

func vec(v camera.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// camera3D builds a perspective raylib camera at pos looking at target.
func camera3D(pos, target camera.Vec3) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(pos),
		Target:     vec(target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := gridMajorColor
		if i%gridMajorStep != 0 {
			c = gridMinorColor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Z = -gridExtent, float32(i)
		end.X, end.Z = gridExtent, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	// X red, Y green, Z blue
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisXColor)
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), axisYColor)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZColor)
}
