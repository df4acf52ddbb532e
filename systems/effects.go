package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
)

// hitFlashDuration is how long a struck agent stays tinted.
const hitFlashDuration = 0.15

// UpdateEffects winds down transient visual effect timers.
func UpdateEffects(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Timer > 0 {
			flash.Timer -= dt
		}
	})
}
