package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
)

// UpdateAnimations advances the active clip of every animated entity. Clip
// selection happens in the state systems; this only steps time.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.Active != nil {
			animData.Active.Update(dt)
		}
	})
}
