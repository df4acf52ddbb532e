package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
)

// UpdateTweens drives floating platforms along their tween sequences. Runs
// before collision resolution so agents ride current positions, and
// refreshes the object cells itself for the same reason.
func UpdateTweens(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		seq := components.Tween.Get(e)
		obj := components.Object.Get(e).Object

		y, _, seqDone := seq.Update(float32(dt))
		obj.Y = float64(y)
		if seqDone {
			seq.Reset()
		}
		obj.Update()
	})
}
