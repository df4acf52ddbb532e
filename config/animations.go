package config

// ClipDef describes one animation clip: frame count, playback rate and
// whether it loops. One-shot clips report a finished flag the state machines
// use for animation-driven exits (enemy Charge, Attack and both Hit states).
type ClipDef struct {
	Frames    int
	FrameRate float64
	Loop      bool
}

// Duration is the clip's play time in seconds. Only meaningful for
// one-shot clips.
func (c ClipDef) Duration() float64 {
	return float64(c.Frames) / c.FrameRate
}

// CharacterClips maps a character key ("player" or an enemy type name) to
// its per-state clip table.
var CharacterClips = map[string]map[StateID]ClipDef{
	"player": {
		Idle:      {Frames: 6, FrameRate: 8, Loop: true},
		Run:       {Frames: 8, FrameRate: 12, Loop: true},
		Jump:      {Frames: 3, FrameRate: 10}, // freezes on the apex frame
		Fall:      {Frames: 2, FrameRate: 8, Loop: true},
		WallSlide: {Frames: 4, FrameRate: 10, Loop: true},
		Dash:      {Frames: 4, FrameRate: 18},
		Attack:    {Frames: 6, FrameRate: 15},
		Hit:       {Frames: 4, FrameRate: 12},
	},
	"stalker": {
		Idle:   {Frames: 4, FrameRate: 6, Loop: true},
		Patrol: {Frames: 6, FrameRate: 10, Loop: true},
		Chase:  {Frames: 6, FrameRate: 14, Loop: true},
		Charge: {Frames: 5, FrameRate: 10},
		Attack: {Frames: 6, FrameRate: 12},
		Hit:    {Frames: 3, FrameRate: 10},
	},
	"brute": {
		Idle:   {Frames: 4, FrameRate: 5, Loop: true},
		Patrol: {Frames: 6, FrameRate: 8, Loop: true},
		Chase:  {Frames: 6, FrameRate: 10, Loop: true},
		Charge: {Frames: 6, FrameRate: 8},
		Attack: {Frames: 8, FrameRate: 10},
		Hit:    {Frames: 4, FrameRate: 10},
	},
}
