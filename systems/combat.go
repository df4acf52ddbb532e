package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
)

// UpdateCombat drains queued damage events into health and velocity, then
// clamps health into range. Invulnerability is checked before a strike is
// queued, so every event seen here is a real hit. What happens to an agent
// at zero health is the host's call, not ours.
func UpdateCombat(ecs *ecs.ECS) {
	var struck []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		struck = append(struck, e)
	}
	for _, e := range struck {
		event := components.DamageEvent.Get(e)

		if e.HasComponent(components.Health) {
			health := components.Health.Get(e)
			health.Current -= event.Amount
		}
		if e.HasComponent(components.Physics) && (event.KnockbackX != 0 || event.KnockbackY != 0) {
			physics := components.Physics.Get(e)
			physics.SpeedX = event.KnockbackX
			physics.SpeedY = event.KnockbackY
		}

		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	for e := range components.Health.Iter(ecs.World) {
		health := components.Health.Get(e)
		if health.Current < 0 {
			health.Current = 0
		}
		if health.Current > health.Max {
			health.Current = health.Max
		}
	}
}
