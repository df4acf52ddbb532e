package components

import (
	"github.com/greyfall/brawlcore/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID

	// StateTimer is the time in seconds spent in the current state. Enter
	// helpers reset it to zero; redundant transitions must not.
	StateTimer float64
}

var State = donburi.NewComponentType[StateData]()

// Marker components mirroring the active state so hosts can query groups of
// agents by what they are doing. UpdateStates keeps them in sync; several
// states share a marker (Patrol and Chase are both Moving, player Attack and
// enemy Charge are both Attacking).
type IdleState struct{}
type MovingState struct{}
type AirborneState struct{}
type WallSlidingState struct{}
type DashingState struct{}
type AttackingState struct{}
type StaggeredState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Moving = donburi.NewComponentType[MovingState]()
var Airborne = donburi.NewComponentType[AirborneState]()
var WallSliding = donburi.NewComponentType[WallSlidingState]()
var Dashing = donburi.NewComponentType[DashingState]()
var Attacking = donburi.NewComponentType[AttackingState]()
var Staggered = donburi.NewComponentType[StaggeredState]()
