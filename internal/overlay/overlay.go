// Package overlay draws the engine's diagnostic window: the app selector, frame timing, GPU
// description and the toggles for the stats and README windows.
package overlay

import (
	"bifrost-engine/internal/timing"
	"bifrost-engine/internal/updatemodel"
)

const (
	// EngineName titles the engine window.
	EngineName = "bifrost"
	// Version is shown in the engine window.
	Version = "0.3.0"

	readmeTitle = EngineName + " engine README.txt"
)

const readmeText = "If you encounter any issues, please read the listing of engine limitations before making a bug report.\n\n" +
	"The following is a listing of " + EngineName + " engine facts:\n" +
	"- Frames are paced to be rendered just before each monitor vertical refresh\n" +
	"- Input is sampled on its own goroutine, many times per frame\n" +
	"\n" +
	"The following is a listing of " + EngineName + " engine limitations:\n" +
	"- The system is not designed to handle when monitors are hot-swapped"

// Switcher is the part of the app table the overlay needs.
type Switcher interface {
	Names() []string
	CurrentIndex() int
	Switch(name string) int
}

// View is everything the overlay reads for one frame.
type View struct {
	Apps   Switcher
	Timing *timing.FrameTiming
	GPU    string
	Width  int
	Height int
	Model  updatemodel.Model
	// DroppedInputs counts platform polls the input goroutine never saw.
	DroppedInputs uint64
	// LogLines are recent log lines shown in the stats window.
	LogLines []string
}

// Overlay is the engine window. ShowStats and ShowReadme only affect what is drawn.
type Overlay struct {
	ShowStats  bool
	ShowReadme bool
	stats      Stats
}

// New returns an overlay with both extra windows hidden.
func New() *Overlay {
	return &Overlay{}
}

// Draw renders the engine window to s and switches apps when the user picks another one.
// Nothing is drawn until a frame timing snapshot exists.
func (o *Overlay) Draw(s Surface, v View) {
	if v.Timing == nil || v.Apps == nil {
		return
	}
	t := v.Timing

	if s.Begin(EngineName) {
		s.Text("engine version: %s", Version)

		names := v.Apps.Names()
		current := v.Apps.CurrentIndex()
		selected := current
		s.Combo("App", &selected, names)
		if selected != current && selected >= 0 && selected < len(names) {
			v.Apps.Switch(names[selected])
		}

		s.Text("CPU frame time: %.3f ms", 1000*t.CPUTime())
		s.Tooltip("the amount of time the CPU logic update portion of the frame took.")

		s.Text("CPU + GPU frame time: %.3f ms", 1000*t.CPUGPUTime())
		s.Tooltip("the total time to render the frame.\nthis is the CPU logic update portion plus the GPU render time.")

		s.Text("present latency: %.3f s", t.PresentLatency())
		s.Tooltip("the phase shift of the game signal to the vertical blank signal.\nif this is negative, that implies the vblank leads the game signal.")

		s.Text("frames displayed per second: %.3f FPS", t.FPS())

		s.Text("GPU in use: %s", v.GPU)
		s.Tooltip("this info is only valid so long as there is just one GPU in the system.")

		s.Text("render resolution: %d x %d", v.Width, v.Height)
		s.Text("display resolution: %d x %d", v.Width, v.Height)

		s.Checkbox("show runtime stats", &o.ShowStats)
		s.Checkbox("show "+readmeTitle, &o.ShowReadme)
	}
	s.End()

	if o.ShowStats {
		o.stats.Draw(s, t.Index, v)
	}
	if o.ShowReadme {
		if s.Begin(readmeTitle) {
			s.TextWrapped(readmeText)
		}
		s.End()
	}
}
