// Package graphics is the raylib window backend: it opens the window, pumps input, owns the
// mouse cursor and presents frames.
package graphics

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"bifrost-engine/internal/input"
	"bifrost-engine/internal/platform"
	"bifrost-engine/internal/timing"
)

// Config describes the window to open.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is a raylib window implementing platform.Platform. Every method must be called from the
// goroutine that called Open, which must be locked to its OS thread.
type Window struct {
	// frame timer, started when the window opens
	*timing.SystemClock

	mouseVisible bool
	clear        rl.Color
}

var _ platform.Platform = (*Window)(nil)

// keyMap maps engine keys to raylib keys.
var keyMap = [input.KeyCount]int32{
	input.KeyW:      rl.KeyW,
	input.KeyA:      rl.KeyA,
	input.KeyS:      rl.KeyS,
	input.KeyD:      rl.KeyD,
	input.KeyShift:  rl.KeyLeftShift,
	input.KeySpace:  rl.KeySpace,
	input.KeyEscape: rl.KeyEscape,
	input.KeyF5:     rl.KeyF5,
	input.KeyF9:     rl.KeyF9,
}

// Open creates the window. Fullscreen uses the current monitor's size.
// ESC is reserved for the overlay, so it never closes the window; close via the window button.
func Open(cfg Config) (*Window, error) {
	var flags uint32 = rl.FlagWindowResizable
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)

	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		width, height = rl.GetMonitorWidth(0), rl.GetMonitorHeight(0)
	}
	rl.InitWindow(int32(width), int32(height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("graphics: could not open %dx%d window", width, height)
	}
	rl.SetExitKey(rl.KeyNull)
	// the engine paces frames itself
	rl.SetTargetFPS(0)

	return &Window{
		SystemClock:  timing.NewSystemClock(),
		mouseVisible: true,
		clear:        rl.NewColor(24, 24, 28, 255),
	}, nil
}

// PollInput pumps window events and reads keyboard, mouse and focus state.
func (w *Window) PollInput() input.Snapshot {
	rl.PollInputEvents()
	var s input.Snapshot
	s.Focused = rl.IsWindowFocused()
	d := rl.GetMouseDelta()
	s.RawDeltaX, s.RawDeltaY = d.X, d.Y
	s.DeltaX, s.DeltaY = d.X, d.Y
	for k, rk := range keyMap {
		s.KeyDown[k] = rl.IsKeyDown(rk)
	}
	s.MouseLeftDown = rl.IsMouseButtonDown(rl.MouseButtonLeft)
	s.MouseRightDown = rl.IsMouseButtonDown(rl.MouseButtonRight)
	return s
}

// Window returns the render size and focus.
func (w *Window) Window() platform.WindowInfo {
	scale := rl.GetWindowScaleDPI()
	return platform.WindowInfo{
		Width:   rl.GetRenderWidth(),
		Height:  rl.GetRenderHeight(),
		Focused: rl.IsWindowFocused(),
		Scale:   scale.X,
	}
}

// ShowMouse shows the cursor, or hides and captures it for camera control.
func (w *Window) ShowMouse(show bool) {
	if show {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
	w.mouseVisible = show
}

// MouseVisible reports the last ShowMouse state.
func (w *Window) MouseVisible() bool { return w.mouseVisible }

// SetMousePos moves the cursor within the window.
func (w *Window) SetMousePos(x, y int) {
	rl.SetMousePosition(x, y)
}

// GPUInfo describes the display the window is on. raylib does not expose the adapter name.
func (w *Window) GPUInfo() platform.GPUInfo {
	monitor := rl.GetMonitorName(rl.GetCurrentMonitor())
	return platform.GPUInfo{Description: fmt.Sprintf("OpenGL (%s/%s) on %s", runtime.GOOS, runtime.GOARCH, monitor)}
}

// SetVSync toggles vsync on the open window.
func (w *Window) SetVSync(on bool) {
	if on {
		rl.SetWindowState(rl.FlagVsyncHint)
	} else {
		rl.ClearWindowState(rl.FlagVsyncHint)
	}
}

// BeginFrame starts drawing and clears the back buffer.
func (w *Window) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(w.clear)
}

// EndFrame presents the frame.
func (w *Window) EndFrame() {
	rl.EndDrawing()
}

// ShouldClose reports whether the user closed the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Close destroys the window.
func (w *Window) Close() {
	rl.CloseWindow()
}
