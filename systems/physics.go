package systems

import (
	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies speed caps and gravity. It runs after the state
// machines, which command velocities, and before collision resolution, which
// applies them. Friction lives in the state handlers since only they know
// whether a speed is commanded or coasting.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		var current cfg.StateID = cfg.StateNone
		if e.HasComponent(components.State) {
			current = components.State.Get(e).CurrentState
		}

		// The dash owns both axes: no cap, no gravity.
		if current == cfg.Dash {
			return
		}

		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		// A wall slide eases its own vertical speed.
		if current == cfg.WallSlide {
			return
		}

		physics.SpeedY += physics.Gravity * dt

		// Wall contact caps the fall even before the slide state
		// engages on the next dispatch.
		if physics.WallSliding != nil && physics.SpeedY > cfg.Physics.WallSlideSpeed {
			physics.SpeedY = cfg.Physics.WallSlideSpeed
		}
	})
}
