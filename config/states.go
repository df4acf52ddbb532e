package config

// StateID identifies a single behavior state of an agent. Exactly one state
// is active per agent at any time; the per-tick dispatch in the systems
// package switches on it.
type StateID int

// StateNone marks "no previous state" on freshly spawned agents so the first
// tick still counts as a state change.
const StateNone StateID = -1

// Player states.
const (
	Idle StateID = iota
	Run
	Jump
	Fall
	WallSlide
	Dash
	Attack
	Hit

	// Enemy states. Enemies reuse Attack and Hit above.
	Patrol
	Chase
	Pause
	Charge
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Run:       "run",
	Jump:      "jump",
	Fall:      "fall",
	WallSlide: "wallslide",
	Dash:      "dash",
	Attack:    "attack",
	Hit:       "hit",
	Patrol:    "patrol",
	Chase:     "chase",
	Pause:     "pause",
	Charge:    "charge",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
