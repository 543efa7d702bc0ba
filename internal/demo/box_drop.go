package demo

import (
	"math/rand"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"bifrost-engine/internal/camera"
	"bifrost-engine/internal/engine"
	"bifrost-engine/internal/input"
	"bifrost-engine/internal/logger"
	"bifrost-engine/internal/overlay"
	"bifrost-engine/internal/physics"
)

const (
	maxBoxes     = 200
	spawnHeight  = 12
	spawnSpread  = 4
	orbitRadius  = 18
	orbitHeight  = 9
	orbitSpeed   = 0.2
	floorExtent  = 30
	boxMinExtent = 0.5
	boxMaxExtent = 1.5
)

var (
	floorColor   = rl.NewColor(70, 70, 80, 255)
	boxColor     = rl.NewColor(200, 200, 90, 255)
	boxRestColor = rl.NewColor(120, 200, 120, 255)
	boxWireColor = rl.NewColor(20, 20, 20, 255)
)

// boxDrop drops boxes onto a floor; Space spawns one per press. The world is reset when the app
// is entered and paused when it is left.
type boxDrop struct {
	acc   *input.Accumulator
	world *physics.World
	boxes *litBox
	t     float32
}

func newBoxDrop(acc *input.Accumulator) *boxDrop {
	b := &boxDrop{acc: acc, world: physics.NewWorld(), boxes: newLitBox()}
	b.reset()
	return b
}

func (b *boxDrop) reset() {
	b.world.Reset()
	b.world.Paused = false
	b.world.AddBody(physics.NewBody([3]float32{0, -0.5, 0}, [3]float32{floorExtent * 2, 1, floorExtent * 2}, 0, true))
	logger.L().Debug("entering app", "name", BoxDropApp)
}

func (b *boxDrop) pause() {
	b.world.Paused = true
}

func (b *boxDrop) spawn() {
	if b.world.Dynamic() >= maxBoxes {
		return
	}
	size := boxMinExtent + rand.Float32()*(boxMaxExtent-boxMinExtent)
	pos := [3]float32{
		(rand.Float32()*2 - 1) * spawnSpread,
		spawnHeight,
		(rand.Float32()*2 - 1) * spawnSpread,
	}
	b.world.AddBody(physics.NewBody(pos, [3]float32{size, size, size}, size*size*size, false))
}

func (b *boxDrop) update(f *engine.Frame) {
	fi := b.acc.Consume()
	if !b.world.Paused {
		for n := fi.Presses(input.ControlSpace); n > 0; n-- {
			b.spawn()
		}
	}
	b.world.Step(f.DT)
	b.t += f.DT

	b.draw()

	if f.CanRenderOverlay {
		f.Engine.DrawOverlay(f)
		if s := f.Engine.Surface(); s != nil {
			b.panel(s)
		}
	}
}

func (b *boxDrop) draw() {
	sin, cos := math32.Sincos(b.t * orbitSpeed)
	eye := camera.Vec3{X: sin * orbitRadius, Y: orbitHeight, Z: cos * orbitRadius}
	rl.BeginMode3D(camera3D(eye, camera.Vec3{Y: 1}))
	b.boxes.setView(eye)
	for _, body := range b.world.Bodies {
		switch {
		case body.Static:
			b.boxes.draw(body.Position, body.Scale, floorColor)
		case body.Resting:
			b.boxes.draw(body.Position, body.Scale, boxRestColor)
		default:
			b.boxes.draw(body.Position, body.Scale, boxColor)
		}
		if !body.Static {
			pos := rl.NewVector3(body.Position[0], body.Position[1], body.Position[2])
			size := rl.NewVector3(body.Scale[0], body.Scale[1], body.Scale[2])
			rl.DrawCubeWiresV(pos, size, boxWireColor)
		}
	}
	rl.EndMode3D()
}

func (b *boxDrop) panel(s overlay.Surface) {
	if s.Begin(BoxDropApp) {
		s.Text("boxes: %d / %d", b.world.Dynamic(), maxBoxes)
		s.Text("press Space to drop a box")
		s.Checkbox("paused", &b.world.Paused)
		overlay.Vec3(s, "gravity", b.world.Gravity)
	}
	s.End()
}
