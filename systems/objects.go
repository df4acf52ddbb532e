package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
)

// UpdateObjects refreshes every resolv object's cell registration after the
// movement systems have run, so the next tick's checks see current
// positions.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
