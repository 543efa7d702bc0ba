// Package platform is the contract between the engine core and a windowing backend.
package platform

import (
	"bifrost-engine/internal/input"
	"bifrost-engine/internal/timing"
)

// WindowInfo describes the client area of the window.
type WindowInfo struct {
	Width   int
	Height  int
	Focused bool
	// Scale is the DPI scale of the monitor the window is on.
	Scale float32
}

// GPUInfo describes the graphics device in use.
type GPUInfo struct {
	Description string
}

// Platform is a window with input, a high-resolution timer and a presentable back buffer.
// Every method must be called from the goroutine that opened it.
type Platform interface {
	timing.Clock

	// PollInput pumps window events and returns the current input state.
	PollInput() input.Snapshot
	Window() WindowInfo
	ShowMouse(show bool)
	MouseVisible() bool
	SetMousePos(x, y int)
	GPUInfo() GPUInfo

	// BeginFrame starts recording draw calls; EndFrame presents them.
	BeginFrame()
	EndFrame()
	ShouldClose() bool
	Close()
}
