package input

// Key identifies a keyboard key the engine samples. Platform backends map their own key codes
// onto these.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyShift
	KeySpace
	KeyEscape
	KeyF5
	KeyF9
	KeyCount
)

// Snapshot is one poll of the window and input devices.
type Snapshot struct {
	Focused bool
	// RawDeltaX/Y are unaccelerated pointer deltas since the previous poll.
	RawDeltaX, RawDeltaY float32
	// DeltaX/Y are OS cursor deltas since the previous poll.
	DeltaX, DeltaY float32
	KeyDown        [KeyCount]bool
	MouseLeftDown  bool
	MouseRightDown bool
}

// Control is a discrete movement control tracked with half-transition counts.
type Control int

const (
	ControlW Control = iota
	ControlA
	ControlS
	ControlD
	ControlShift
	ControlSpace
	ControlCount
)

var controlKeys = [ControlCount]Key{KeyW, KeyA, KeyS, KeyD, KeyShift, KeySpace}

var controlNames = [ControlCount]string{"W", "A", "S", "D", "Shift", "Space"}

// Key returns the key that drives c.
func (c Control) Key() Key {
	return controlKeys[c]
}

func (c Control) String() string {
	if c < 0 || c >= ControlCount {
		return "unknown"
	}
	return controlNames[c]
}
