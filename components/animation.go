package components

import (
	"github.com/greyfall/brawlcore/animations"
	"github.com/greyfall/brawlcore/config"
	"github.com/yohamta/donburi"
)

// AnimationData holds an agent's clip table and playback position. Clips are
// keyed by state; states without a clip leave Active nil.
type AnimationData struct {
	Clips   map[config.StateID]*animations.Animation
	Current config.StateID
	Active  *animations.Animation
}

// Select switches to the clip for state. Re-selecting the current state is a
// no-op, so an already-playing clip is never restarted; a genuine state
// change restarts the new clip from frame 0.
func (a *AnimationData) Select(state config.StateID) {
	if a.Current == state {
		return
	}
	a.Current = state
	if clip, ok := a.Clips[state]; ok {
		a.Active = clip
		a.Active.Restart()
	} else {
		a.Active = nil
	}
}

// Finished reports whether the clip for state has played through. A finish
// carried over from some other state's clip never counts, which drops stale
// completion notifications after a preemption.
func (a *AnimationData) Finished(state config.StateID) bool {
	return a.Current == state && a.Active != nil && a.Active.Finished
}

var Animation = donburi.NewComponentType[AnimationData]()
