// internal/slideshow/mode.go
package slideshow

// Mode selects how the slideshow advances.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeAuto   Mode = "auto"
	ModeRandom Mode = "random"
)

// Modes lists the valid modes in cycling order.
var Modes = []Mode{ModeManual, ModeAuto, ModeRandom}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeManual, ModeAuto, ModeRandom:
		return true
	default:
		return false
	}
}

// Label returns a display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeManual:
		return "Manual"
	case ModeAuto:
		return "Auto-play"
	case ModeRandom:
		return "Random"
	default:
		return "Unknown"
	}
}

// NextMode returns the mode after m in cycling order.
func NextMode(m Mode) Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeManual
}

// State is the engine's coarse state.
type State int

const (
	StateIdle State = iota
	StateManual
	StateAuto
	StateRandom
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateManual:
		return "Manual"
	case StateAuto:
		return "Auto"
	case StateRandom:
		return "Random"
	default:
		return "Unknown"
	}
}

// Direction is the visual direction of a slide change.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "Backward"
	}
	return "Forward"
}
