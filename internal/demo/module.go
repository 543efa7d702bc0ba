// Package demo is the module shipped with the engine: a fly camera scene and a box drop scene.
package demo

import (
	"bifrost-engine/internal/bifrost"
	"bifrost-engine/internal/engine"
	"bifrost-engine/internal/input"
	"bifrost-engine/internal/logger"
	"bifrost-engine/internal/updatemodel"
)

// App names registered by Hotload.
const (
	FlySceneApp = "fly_scene"
	BoxDropApp  = "box_drop"
)

// Options configures the module.
type Options struct {
	UpdateModel updatemodel.Model
	Sensitivity float32
}

// Module owns the input state shared by both apps.
type Module struct {
	opts     Options
	settings *input.Settings
	acc      input.Accumulator
	sampler  *input.Sampler

	// input goroutine only
	reloadLastCall bool

	fly   *flyScene
	boxes *boxDrop
}

var _ engine.Module = (*Module)(nil)

// New returns the demo module. Scenes are created by Init once the window exists.
func New(opts Options) *Module {
	if opts.Sensitivity <= 0 {
		opts.Sensitivity = 1
	}
	m := &Module{opts: opts, settings: input.NewSettings(opts.Sensitivity)}
	m.sampler = input.NewSampler(&m.acc, m.settings)
	return m
}

// Init selects the update model and loads scene resources.
func (m *Module) Init(e *engine.Engine) error {
	e.SetUpdateModel(m.opts.UpdateModel)
	m.fly = newFlyScene(m.settings, &m.acc)
	m.boxes = newBoxDrop(&m.acc)
	return nil
}

// Hotload registers both apps.
func (m *Module) Hotload(e *engine.Engine) {
	e.Apps().Register(FlySceneApp, m.fly.update, bifrost.WithTransitionInto(m.fly.enter))
	e.Apps().Register(BoxDropApp, m.boxes.update,
		bifrost.WithTransitionInto(m.boxes.reset),
		bifrost.WithTransitionOut(m.boxes.pause),
	)
}

// HandleInput feeds the sampler and requests a reload on an F9 rising edge.
func (m *Module) HandleInput(e *engine.Engine, snap input.Snapshot) {
	m.sampler.Sample(snap, e.Display())

	reload := snap.KeyDown[input.KeyF9]
	if reload && !m.reloadLastCall {
		logger.L().Info("hot reload requested")
		e.RequestReload()
	}
	m.reloadLastCall = reload
}
