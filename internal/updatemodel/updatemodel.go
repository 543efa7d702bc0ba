// Package updatemodel names how the engine paces frame submission relative to GPU completion.
package updatemodel

import (
	"fmt"
	"strings"
)

// Model is the CPU/GPU frame pacing policy. It is declared once when an application
// initializes and read by the render backend.
type Model int

const (
	// Atomic waits for the GPU to finish each frame before the next simulation step.
	Atomic Model = iota
	// FrameBuffering lets the CPU record the next frame while the GPU renders the current one.
	FrameBuffering
	// OneLatentFrame shows each simulated frame one frame late.
	OneLatentFrame

	count
)

var names = [count]string{
	"AUTOMATA_ENGINE_UPDATE_MODEL_ATOMIC",
	"AUTOMATA_ENGINE_UPDATE_MODEL_FRAME_BUFFERING",
	"AUTOMATA_ENGINE_UPDATE_MODEL_ONE_LATENT_FRAME",
}

var shortNames = [count]string{"atomic", "frame_buffering", "one_latent_frame"}

// Unknown is returned by String for values outside the enumeration.
const Unknown = "UNKNOWN"

// String returns the stable diagnostic name of m, or Unknown.
func (m Model) String() string {
	return ToString(int(m))
}

// ToString returns the stable name for a raw model value, or Unknown when out of range.
func ToString(v int) string {
	if v >= 0 && v < int(count) {
		return names[v]
	}
	return Unknown
}

// Valid reports whether m is one of the enumerated models.
func (m Model) Valid() bool {
	return m >= 0 && m < count
}

// Parse accepts a short config name (e.g. "frame_buffering") or the full diagnostic name.
// The empty string selects Atomic.
func Parse(s string) (Model, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Atomic, nil
	}
	for i := Model(0); i < count; i++ {
		if strings.EqualFold(s, shortNames[i]) || s == names[i] {
			return i, nil
		}
	}
	return Atomic, fmt.Errorf("unknown update model %q", s)
}

// FramesInFlight is the number of frames the CPU may run ahead of the GPU.
func (m Model) FramesInFlight() int {
	switch m {
	case FrameBuffering, OneLatentFrame:
		return 2
	default:
		return 1
	}
}

// VSync reports whether the backend should block presentation on the vertical blank.
// Atomic frames are paced by the engine instead.
func (m Model) VSync() bool {
	return m == FrameBuffering || m == OneLatentFrame
}
