package demo

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"bifrost-engine/internal/camera"
	"bifrost-engine/internal/engine"
	"bifrost-engine/internal/input"
	"bifrost-engine/internal/logger"
	"bifrost-engine/internal/overlay"
)

const (
	spinDegreesPerSecond = 45
	minSensitivity       = 0.1
	maxSensitivity       = 5
)

const flyReadme = "Right click to fly, ESC or F5 to get the cursor back.\n" +
	"W/A/S/D move on the ground plane, Space and Shift move up and down.\n" +
	"F9 reloads the module."

var (
	cubeColor       = rl.NewColor(230, 140, 60, 255)
	cubeWireColor   = rl.NewColor(40, 20, 10, 255)
	cubePausedColor = rl.NewColor(90, 160, 220, 255)
)

// flyScene is a fly camera over the editor grid with a spinning cube.
type flyScene struct {
	settings *input.Settings
	acc      *input.Accumulator
	cam      *camera.Fly
	cube     rl.Model

	spin       bool
	angle      float32
	showReadme bool
}

func newFlyScene(settings *input.Settings, acc *input.Accumulator) *flyScene {
	s := &flyScene{
		settings: settings,
		acc:      acc,
		cam:      camera.NewFly(),
		cube:     rl.LoadModelFromMesh(rl.GenMeshCube(2, 2, 2)),
		spin:     true,
	}
	s.cam.Position = camera.Vec3{X: 0, Y: 4, Z: 12}
	return s
}

func (s *flyScene) enter() {
	logger.L().Debug("entering app", "name", FlySceneApp, "position", s.cam.Position)
}

func (s *flyScene) update(f *engine.Frame) {
	e := f.Engine
	fi := s.acc.Consume()
	firstPerson := s.settings.FirstPerson.Load()
	s.cam.Update(f.DT, fi, camera.Look{
		DeltaX:      fi.DeltaX,
		DeltaY:      fi.DeltaY,
		Sensitivity: s.settings.Sensitivity.Load(),
		LockYaw:     s.settings.LockYaw.Load(),
		LockPitch:   s.settings.LockPitch.Load(),
		Enabled:     firstPerson,
	})
	if s.spin {
		s.angle = math32.Mod(s.angle+spinDegreesPerSecond*f.DT, 360)
	}

	engine.RecentreCursor(e.Platform(), f.Window, firstPerson)

	s.draw()

	if f.CanRenderOverlay {
		e.DrawOverlay(f)
		if surface := e.Surface(); surface != nil {
			s.panel(surface)
		}
	}
}

func (s *flyScene) draw() {
	rl.BeginMode3D(camera3D(s.cam.Position, s.cam.Target()))
	drawEditorGrid()
	pos := rl.NewVector3(0, 1, 0)
	axis := rl.NewVector3(0, 1, 0)
	scale := rl.NewVector3(1, 1, 1)
	c := cubeColor
	if !s.spin {
		c = cubePausedColor
	}
	rl.DrawModelEx(s.cube, pos, axis, s.angle, scale, c)
	rl.DrawModelWiresEx(s.cube, pos, axis, s.angle, scale, cubeWireColor)
	rl.EndMode3D()
}

func (s *flyScene) panel(surface overlay.Surface) {
	if surface.Begin(FlySceneApp) {
		lockYaw := s.settings.LockYaw.Load()
		if surface.Checkbox("lock yaw", &lockYaw) {
			s.settings.LockYaw.Store(lockYaw)
		}
		lockPitch := s.settings.LockPitch.Load()
		if surface.Checkbox("lock pitch", &lockPitch) {
			s.settings.LockPitch.Store(lockPitch)
		}
		sens := s.settings.Sensitivity.Load()
		if surface.SliderFloat("sensitivity", &sens, minSensitivity, maxSensitivity) {
			s.settings.Sensitivity.Store(sens)
		}
		surface.Checkbox("spin cube", &s.spin)

		overlay.Vec3(surface, "position", s.cam.Position.Array())
		overlay.Vec3(surface, "euler", s.cam.Euler.Array())
		view := rl.MatrixLookAt(vec(s.cam.Position), vec(s.cam.Target()), rl.NewVector3(0, 1, 0))
		overlay.Mat4(surface, "view", rl.MatrixToFloatV(view))

		surface.Checkbox("show "+FlySceneApp+" README.txt", &s.showReadme)
	}
	surface.End()

	if s.showReadme {
		if surface.Begin(FlySceneApp + " README.txt") {
			surface.TextWrapped(flyReadme)
		}
		surface.End()
	}
}
