package factory

import (
	"github.com/greyfall/brawlcore/archetypes"
	"github.com/greyfall/brawlcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock spawns the singleton tick clock. dt is the timestep in
// seconds handed to every system on each update.
func CreateClock(ecs *ecs.ECS, dt float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{DT: dt})
	return clock
}
