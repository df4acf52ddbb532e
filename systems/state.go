package systems

import (
	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates mirrors each agent's current state onto marker components so
// hosts can query agents by what they are doing. Runs after both state
// machines; PreviousState doubles as the change detector.
func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		updateStateTags(e, components.State.Get(e))
	})
}

func updateStateTags(e *donburi.Entry, state *components.StateData) {
	if state.CurrentState == state.PreviousState {
		return
	}

	removeAllStateTags(e)

	switch state.CurrentState {
	case cfg.Idle, cfg.Pause:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Run, cfg.Patrol, cfg.Chase:
		donburi.Add(e, components.Moving, &components.MovingState{})
	case cfg.Jump, cfg.Fall:
		donburi.Add(e, components.Airborne, &components.AirborneState{})
	case cfg.WallSlide:
		donburi.Add(e, components.WallSliding, &components.WallSlidingState{})
	case cfg.Dash:
		donburi.Add(e, components.Dashing, &components.DashingState{})
	case cfg.Attack, cfg.Charge:
		donburi.Add(e, components.Attacking, &components.AttackingState{})
	case cfg.Hit:
		donburi.Add(e, components.Staggered, &components.StaggeredState{})
	}

	state.PreviousState = state.CurrentState
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.MovingState](e, components.Moving)
	donburi.Remove[components.AirborneState](e, components.Airborne)
	donburi.Remove[components.WallSlidingState](e, components.WallSliding)
	donburi.Remove[components.DashingState](e, components.Dashing)
	donburi.Remove[components.AttackingState](e, components.Attacking)
	donburi.Remove[components.StaggeredState](e, components.Staggered)
}
