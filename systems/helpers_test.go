package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/systems/factory"
)

const testDT = 1.0 / 60.0

// newTestWorld builds a world with a clock and an empty collision space.
// Tests add their own terrain with the factory helpers.
func newTestWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e, testDT)
	factory.CreateSpace(e, cfg.World.Width, cfg.World.Height, cfg.World.CellSize, cfg.World.CellSize)
	return e
}

// addFloor lays a full-width floor with its top at y=320.
func addFloor(e *ecs.ECS) {
	factory.CreateWall(e, 0, 320, float64(cfg.World.Width), 32)
}

// tick steps the world once through the gameplay chain. Tests write input
// snapshots directly, so the keyboard reader is not part of the chain.
func tick(e *ecs.ECS) {
	UpdateBots(e)
	UpdatePlayers(e)
	UpdateEnemies(e)
	UpdateStates(e)
	UpdatePhysics(e)
	UpdateTweens(e)
	UpdateCollisions(e)
	UpdateObjects(e)
	UpdateCombatHitboxes(e)
	UpdateCombat(e)
	UpdateEffects(e)
	UpdateAnimations(e)
	UpdateCamera(e)
}

func tickN(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		tick(e)
	}
}

// ticksFor returns a tick count safely past d seconds.
func ticksFor(d float64) int {
	return int(d/testDT) + 2
}

// pressOnce holds an action for exactly one tick, the shape the keyboard
// reader produces for a quick tap.
func pressOnce(e *ecs.ECS, s *components.ActionState) {
	s.Pressed = true
	s.JustPressed = true
	tick(e)
	*s = components.ActionState{}
}

// settle ticks until the agent has a ground witness.
func settle(t *testing.T, e *ecs.ECS, entry *donburi.Entry) {
	t.Helper()
	for i := 0; i < 300; i++ {
		if components.Physics.Get(entry).OnGround != nil {
			return
		}
		tick(e)
	}
	t.Fatal("agent never landed")
}

// tickUntil runs the world until cond holds, failing after max ticks.
func tickUntil(t *testing.T, e *ecs.ECS, max int, cond func() bool) {
	t.Helper()
	for i := 0; i < max; i++ {
		if cond() {
			return
		}
		tick(e)
	}
	t.Fatalf("condition not reached within %d ticks", max)
}

func currentState(entry *donburi.Entry) cfg.StateID {
	return components.State.Get(entry).CurrentState
}

func countHitboxes(e *ecs.ECS) int {
	n := 0
	components.Hitbox.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
