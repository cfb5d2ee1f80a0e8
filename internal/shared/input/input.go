package input

// Control is one logical button of the fixed control set.
type Control uint8

const (
	MoveLeft Control = iota
	MoveRight
	Jump
	Dash
	Fire
	WeaponPrev
	WeaponNext
	Reload
	Medkit
	Shield
	Interact

	ControlCount
)

var controlNames = [ControlCount]string{
	MoveLeft:   "move_left",
	MoveRight:  "move_right",
	Jump:       "jump",
	Dash:       "dash",
	Fire:       "fire",
	WeaponPrev: "weapon_prev",
	WeaponNext: "weapon_next",
	Reload:     "reload",
	Medkit:     "medkit",
	Shield:     "shield",
	Interact:   "interact",
}

func (c Control) String() string {
	if c >= ControlCount {
		return "unknown"
	}
	return controlNames[c]
}

// State is a per-frame snapshot of the input backend. The simulation only
// ever sees this value, never the backend itself.
type State struct {
	Held    [ControlCount]bool `json:"held"`
	Pressed [ControlCount]bool `json:"pressed"`

	// Aim pointer, already in world coordinates.
	AimX float64 `json:"aim_x"`
	AimY float64 `json:"aim_y"`
}

func (s State) IsHeld(c Control) bool {
	if c >= ControlCount {
		return false
	}
	return s.Held[c]
}

func (s State) JustPressed(c Control) bool {
	if c >= ControlCount {
		return false
	}
	return s.Pressed[c]
}

// Hold marks c as held; convenient for tests and replays.
func (s State) Hold(c Control) State {
	if c < ControlCount {
		s.Held[c] = true
	}
	return s
}

// Press marks c as pressed this frame (and held).
func (s State) Press(c Control) State {
	if c < ControlCount {
		s.Pressed[c] = true
		s.Held[c] = true
	}
	return s
}

func (s State) Aim(x, y float64) State {
	s.AimX, s.AimY = x, y
	return s
}
