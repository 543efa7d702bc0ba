// Package engine drives frames: it samples input on its own goroutine, runs the current app from
// the app table once per frame and publishes frame timing.
package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"bifrost-engine/internal/bifrost"
	"bifrost-engine/internal/input"
	"bifrost-engine/internal/logger"
	"bifrost-engine/internal/overlay"
	"bifrost-engine/internal/platform"
	"bifrost-engine/internal/timing"
	"bifrost-engine/internal/updatemodel"
)

const (
	defaultInputBuffer  = 256
	defaultPollInterval = 500 * time.Microsecond
	// maxDT bounds the simulation step after a stall (window drag, breakpoint).
	maxDT = 0.25
)

// Module is a hot-loadable set of apps.
type Module interface {
	// Init runs once before the first Hotload. A returned error aborts Run.
	Init(e *Engine) error
	// Hotload registers the module's apps. The app table is empty when it is called.
	Hotload(e *Engine)
	// HandleInput runs on the input goroutine for every platform poll.
	HandleInput(e *Engine, snap input.Snapshot)
}

// Surface is an overlay surface that is reset and flushed once per frame.
type Surface interface {
	overlay.Surface
	NewFrame()
	Render()
}

// Frame is what an app update receives.
type Frame struct {
	Engine *Engine
	// Timing is the last published frame, nil during the first frame.
	Timing *timing.FrameTiming
	// DT is the simulation step in seconds.
	DT               float32
	Window           platform.WindowInfo
	CanRenderOverlay bool
	Index            uint64
}

// Config tunes the frame loop.
type Config struct {
	// TargetFPS sets the frame period used to size the input window. Zero polls once per frame.
	TargetFPS int
	// StartApp is switched to after the first Hotload when it names a registered app.
	StartApp    string
	HideOverlay bool
	// UpdateModel is used when the module does not call SetUpdateModel during Init.
	UpdateModel  updatemodel.Model
	InputBuffer  int
	PollInterval time.Duration
	// LogLines feeds the overlay's stats window. May be nil.
	LogLines func() []string
}

// vsyncSetter is implemented by platforms that can change vsync after the window opened.
type vsyncSetter interface {
	SetVSync(on bool)
}

// Engine owns the app table and the frame loop. Apart from the documented exceptions, its
// methods must be called from the goroutine running Run.
type Engine struct {
	cfg     Config
	plat    platform.Platform
	surface Surface
	apps    *bifrost.Registry[*Frame]
	overlay *overlay.Overlay
	display input.Display
	pub     timing.Publisher
	rec     *timing.Recorder

	model    updatemodel.Model
	modelSet bool

	module          atomic.Pointer[Module]
	reloadRequested atomic.Bool
	inputCh         chan input.Snapshot
	dropped         atomic.Uint64

	fatalMu sync.Mutex
	fatal   error
}

// New returns an engine driving plat. surface may be nil, in which case nothing is drawn by
// DrawOverlay.
func New(plat platform.Platform, surface Surface, cfg Config) *Engine {
	if cfg.InputBuffer <= 0 {
		cfg.InputBuffer = defaultInputBuffer
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	e := &Engine{
		cfg:     cfg,
		plat:    plat,
		surface: surface,
		apps:    bifrost.New[*Frame](),
		overlay: overlay.New(),
		model:   cfg.UpdateModel,
		inputCh: make(chan input.Snapshot, cfg.InputBuffer),
	}
	e.rec = timing.NewRecorder(plat, &e.pub)
	e.display.OverlayVisible.Store(!cfg.HideOverlay)
	e.display.MouseVisible.Store(plat.MouseVisible())
	return e
}

// Apps returns the app table.
func (e *Engine) Apps() *bifrost.Registry[*Frame] { return e.apps }

// Display returns the flags shared between the input goroutine and the frame loop.
// Safe for concurrent use.
func (e *Engine) Display() *input.Display { return &e.display }

// Platform returns the platform the engine drives.
func (e *Engine) Platform() platform.Platform { return e.plat }

// Surface returns the overlay surface, or nil when running headless.
func (e *Engine) Surface() Surface { return e.surface }

// Overlay returns the engine window state.
func (e *Engine) Overlay() *overlay.Overlay { return e.overlay }

// LatestTiming returns the last published frame timing, or nil. Safe for concurrent use.
func (e *Engine) LatestTiming() *timing.FrameTiming { return e.pub.Latest() }

// DroppedInputs returns how many polls were discarded because the input goroutine fell behind.
func (e *Engine) DroppedInputs() uint64 { return e.dropped.Load() }

// SetUpdateModel selects the update model. Only the first call has an effect.
func (e *Engine) SetUpdateModel(m updatemodel.Model) {
	if e.modelSet {
		logger.L().Warn("update model already selected, ignoring", "current", e.model, "requested", m)
		return
	}
	e.model = m
	e.modelSet = true
	if v, ok := e.plat.(vsyncSetter); ok {
		v.SetVSync(m.VSync())
	}
	logger.L().Info("update model selected", "model", m)
}

// UpdateModel returns the selected update model.
func (e *Engine) UpdateModel() updatemodel.Model { return e.model }

// SetFatalExit stops the frame loop after the current frame; Run returns err wrapped. The first
// error wins. Safe for concurrent use.
func (e *Engine) SetFatalExit(err error) {
	if err == nil {
		return
	}
	e.fatalMu.Lock()
	defer e.fatalMu.Unlock()
	if e.fatal == nil {
		e.fatal = err
		logger.L().Error("fatal exit requested", "err", err)
	}
}

func (e *Engine) fatalErr() error {
	e.fatalMu.Lock()
	defer e.fatalMu.Unlock()
	return e.fatal
}

// RequestReload asks the frame loop to hot reload the running module before the next frame.
// Safe for concurrent use.
func (e *Engine) RequestReload() {
	e.reloadRequested.Store(true)
}

// Reload empties the app table and lets m register its apps again. The previously current app
// stays current when m registers it again. No transition hooks run.
func (e *Engine) Reload(m Module) {
	prev := e.apps.CurrentName()
	e.module.Store(&m)
	e.apps.Clear()
	m.Hotload(e)
	if i, ok := e.apps.Lookup(prev); ok && prev != "" {
		e.apps.Select(i)
	}
	logger.L().Info("module loaded", "apps", e.apps.Len(), "current", e.apps.CurrentName())
}

// RecentreCursor warps the cursor to the middle of the window when the camera is in first-person
// mode and the cursor is hidden. It reports whether the cursor moved.
func RecentreCursor(plat platform.Platform, w platform.WindowInfo, firstPerson bool) bool {
	if !firstPerson || plat.MouseVisible() {
		return false
	}
	plat.SetMousePos(w.Width/2, w.Height/2)
	return true
}

// DrawOverlay draws the engine window for f. Apps call it from their update.
func (e *Engine) DrawOverlay(f *Frame) {
	if f == nil || !f.CanRenderOverlay || e.surface == nil {
		return
	}
	v := overlay.View{
		Apps:   e.apps,
		Timing: f.Timing,
		GPU:    e.plat.GPUInfo().Description,
		Width:  f.Window.Width,
		Height: f.Window.Height,

		Model:         e.model,
		DroppedInputs: e.dropped.Load(),
	}
	if e.cfg.LogLines != nil {
		v.LogLines = e.cfg.LogLines()
	}
	e.overlay.Draw(e.surface, v)
}

// Run initializes m and drives frames until ctx is done, the window closes or a fatal exit is
// requested. The input goroutine is stopped before Run returns.
func (e *Engine) Run(ctx context.Context, m Module) error {
	if err := m.Init(e); err != nil {
		return fmt.Errorf("engine: init module: %w", err)
	}
	if !e.modelSet {
		e.SetUpdateModel(e.model)
	}
	e.Reload(m)
	if name := e.cfg.StartApp; name != "" && name != e.apps.CurrentName() {
		if e.apps.Switch(name) == 0 {
			logger.L().Warn("start app not registered", "name", name)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		e.inputLoop(ctx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	for ctx.Err() == nil && !e.plat.ShouldClose() && e.fatalErr() == nil {
		e.runFrame(ctx)
	}

	if err := e.fatalErr(); err != nil {
		return fmt.Errorf("engine: fatal exit: %w", err)
	}
	logger.L().Info("frame loop stopped", "frames", e.rec.Frames(), "dropped_inputs", e.dropped.Load())
	return nil
}

func (e *Engine) inputLoop(ctx context.Context) {
	for {
		select {
		case snap := <-e.inputCh:
			e.handleInput(snap)
		case <-ctx.Done():
			for {
				select {
				case snap := <-e.inputCh:
					e.handleInput(snap)
				default:
					return
				}
			}
		}
	}
}

func (e *Engine) handleInput(snap input.Snapshot) {
	if m := e.module.Load(); m != nil {
		(*m).HandleInput(e, snap)
	}
}

func (e *Engine) poll() {
	snap := e.plat.PollInput()
	select {
	case e.inputCh <- snap:
	default:
		e.dropped.Add(1)
	}
}

// inputWindow is how long to keep polling before the update starts so that the frame finishes
// close to the end of the frame period.
func (e *Engine) inputWindow() float32 {
	if e.cfg.TargetFPS <= 0 {
		return 0
	}
	window := 1 / float32(e.cfg.TargetFPS)
	if last := e.pub.Latest(); last != nil {
		window -= last.CPUGPUTime()
	}
	if window < 0 {
		return 0
	}
	return window
}

func (e *Engine) runFrame(ctx context.Context) {
	if e.reloadRequested.Swap(false) {
		if m := e.module.Load(); m != nil {
			e.Reload(*m)
		}
	}

	window := e.inputWindow()
	start := e.plat.Now()
	for {
		e.poll()
		if timing.Elapsed(start, e.plat.Now(), e.plat.Frequency()) >= window || ctx.Err() != nil || e.plat.ShouldClose() {
			break
		}
		time.Sleep(e.cfg.PollInterval)
	}

	if want := e.display.MouseVisible.Load(); want != e.plat.MouseVisible() {
		e.plat.ShowMouse(want)
	}

	last := e.pub.Latest()
	e.rec.BeginFrame()
	f := &Frame{
		Engine:           e,
		Timing:           last,
		DT:               e.frameDT(last),
		Window:           e.plat.Window(),
		CanRenderOverlay: e.display.OverlayVisible.Load(),
		Index:            e.rec.Frames(),
	}

	e.plat.BeginFrame()
	if e.surface != nil {
		e.surface.NewFrame()
	}
	if app := e.apps.CurrentApp(); app != nil {
		app(f)
	}
	e.rec.MarkUpdateEnd()
	if e.surface != nil {
		e.surface.Render()
	}
	e.plat.EndFrame()
	e.rec.MarkGPUEnd()
	e.rec.Publish()
}

func (e *Engine) frameDT(last *timing.FrameTiming) float32 {
	var dt float32
	if last != nil {
		dt = last.VisibleTime
	}
	if dt <= 0 {
		if e.cfg.TargetFPS > 0 {
			return 1 / float32(e.cfg.TargetFPS)
		}
		return 1.0 / 60
	}
	if dt > maxDT {
		return maxDT
	}
	return dt
}
