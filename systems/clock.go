package systems

import (
	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/yohamta/donburi/ecs"
)

// DeltaTime returns the current tick's timestep in seconds. Worlds built
// without a clock entity run at the default fixed rate.
func DeltaTime(ecs *ecs.ECS) float64 {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry).DT
	}
	return cfg.World.FixedDT
}
