package components

import "github.com/yohamta/donburi"

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData is the per-tick input snapshot a player agent consumes. The
// keyboard reader fills it from ebiten; bots and tests write it directly.
// Jump, dash and attack trigger on JustPressed only, so holding a button
// does not retrigger.
type InputData struct {
	// Axis is the horizontal input in [-1, 1].
	Axis float64

	Jump   ActionState
	Dash   ActionState
	Attack ActionState
}

var Input = donburi.NewComponentType[InputData]()
