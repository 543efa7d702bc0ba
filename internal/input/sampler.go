package input

import "sync/atomic"

// Display holds engine-wide presentation flags shared by the input goroutine and the frame
// loop. Both fields are atomic cross-context.
type Display struct {
	// OverlayVisible is true while the engine overlay is drawn and the cursor is free.
	OverlayVisible atomic.Bool
	// MouseVisible is the requested cursor visibility. The frame loop applies it to the
	// platform, which can only be driven from the main goroutine.
	MouseVisible atomic.Bool
}

// Settings are per-app camera settings. The overlay writes them from the simulation goroutine
// and the input goroutine reads them, so every field is atomic cross-context.
type Settings struct {
	LockYaw     atomic.Bool
	LockPitch   atomic.Bool
	Sensitivity Float32
	// FirstPerson is written by the input goroutine when the user captures or frees the mouse.
	FirstPerson atomic.Bool
}

// NewSettings returns settings with the given camera sensitivity and first person off.
func NewSettings(sensitivity float32) *Settings {
	s := &Settings{}
	s.Sensitivity.Store(sensitivity)
	return s
}

// Sampler is the input-context half of an app: it decides mouse capture and overlay
// visibility and feeds the accumulator. Only the input goroutine may call Sample.
type Sampler struct {
	acc      *Accumulator
	settings *Settings

	// single-owner (input goroutine)
	focusedLastCall bool
	lastToggle      bool
}

// NewSampler returns a sampler writing into acc and settings. The window is assumed focused on
// the first call.
func NewSampler(acc *Accumulator, settings *Settings) *Sampler {
	return &Sampler{acc: acc, settings: settings, focusedLastCall: true}
}

// Sample handles one poll.
//
// A right click captures the mouse for the first person camera and hides the overlay. Escape,
// or the window losing focus, frees the mouse and shows the overlay. A rising edge on F5 toggles
// between the two.
func (s *Sampler) Sample(snap Snapshot, d *Display) {
	firstPerson := s.settings.FirstPerson.Load()
	overlay := d.OverlayVisible.Load()
	mouseVisible := d.MouseVisible.Load()

	enterOverlay := func() {
		mouseVisible = true
		firstPerson = false
		overlay = true
	}
	exitOverlay := func() {
		mouseVisible = false
		firstPerson = true
		overlay = false
	}

	if snap.MouseRightDown {
		exitOverlay()
	}
	if snap.KeyDown[KeyEscape] {
		enterOverlay()
	}
	if s.focusedLastCall && !snap.Focused {
		enterOverlay()
	}
	s.focusedLastCall = snap.Focused

	toggle := snap.KeyDown[KeyF5]
	if toggle && !s.lastToggle {
		if overlay {
			exitOverlay()
		} else {
			enterOverlay()
		}
	}
	s.lastToggle = toggle

	s.acc.Record(snap)

	s.settings.FirstPerson.Store(firstPerson)
	d.OverlayVisible.Store(overlay)
	d.MouseVisible.Store(mouseVisible)
}
