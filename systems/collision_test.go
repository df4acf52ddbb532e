package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/systems/factory"
	"github.com/greyfall/brawlcore/tags"
)

func TestRunIntoWallStopsFlush(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	factory.CreateWall(e, 320, 96, 16, 224)
	player := factory.CreatePlayer(e, 260, 290)
	settle(t, e, player)

	input := components.Input.Get(player)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	input.Axis = 1
	tickN(e, 40)

	assert.InDelta(t, 304.0, obj.X, 0.001, "should be flush against the wall")
	assert.Equal(t, 0.0, physics.SpeedX)
	assert.Nil(t, physics.WallSliding, "grounded contact must not arm wall sliding")
	assert.NotNil(t, physics.OnGround)
	assert.Equal(t, cfg.Run, currentState(player))
}

func TestOneWayPlatformJumpThroughAndLand(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	factory.CreatePlatform(e, 128, 240, 80, 8)
	player := factory.CreatePlayer(e, 150, 290)
	settle(t, e, player)

	input := components.Input.Get(player)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	// Rising feet pass the platform band without catching.
	pressOnce(e, &input.Jump)
	tickUntil(t, e, 30, func() bool {
		return obj.Bottom() < 238 && physics.OnGround == nil
	})

	// Falling feet land on top of it.
	tickUntil(t, e, 120, func() bool { return physics.OnGround != nil })
	assert.InDelta(t, 240.0, obj.Bottom(), 0.001)
	require.NotNil(t, physics.OnGround)
	assert.True(t, physics.OnGround.HasTags(tags.ResolvPlatform))

	// Walking off the edge drops back to the floor.
	input.Axis = 1
	tickUntil(t, e, 60, func() bool { return physics.OnGround == nil })
	input.Axis = 0
	tickUntil(t, e, 120, func() bool { return physics.OnGround != nil })
	assert.InDelta(t, 320.0, obj.Bottom(), 0.001)
	assert.True(t, physics.OnGround.HasTags(tags.ResolvSolid))
}

func TestDeepOverlapFallsThroughPlatform(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	factory.CreatePlatform(e, 128, 240, 80, 8)

	// Feet start 10px below the platform top, past the landing slack.
	player := factory.CreatePlayer(e, 150, 226)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	tickUntil(t, e, 120, func() bool { return physics.OnGround != nil })

	assert.InDelta(t, 320.0, obj.Bottom(), 0.001, "first landing should be the floor")
	assert.True(t, physics.OnGround.HasTags(tags.ResolvSolid))
}

func TestShallowOverlapStillCatchesPlatform(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	factory.CreatePlatform(e, 128, 240, 80, 8)

	// Feet 2px below the platform top, inside the landing slack.
	player := factory.CreatePlayer(e, 150, 218)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	tick(e)

	require.NotNil(t, physics.OnGround)
	assert.True(t, physics.OnGround.HasTags(tags.ResolvPlatform))
	assert.InDelta(t, 240.0, obj.Bottom(), 0.001, "should snap flush onto the platform top")
}

func TestHeadBumpStopsRise(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	factory.CreateWall(e, 0, 180, float64(cfg.World.Width), 16)
	player := factory.CreatePlayer(e, 300, 290)
	settle(t, e, player)

	input := components.Input.Get(player)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	pressOnce(e, &input.Jump)
	tickUntil(t, e, 30, func() bool { return obj.Y <= 196.001 })

	assert.InDelta(t, 196.0, obj.Y, 0.001, "head should stop flush under the ceiling")
	assert.Equal(t, 0.0, physics.SpeedY)

	settle(t, e, player)
	assert.InDelta(t, 320.0, obj.Bottom(), 0.001)
}

func TestFallStepNeverOutrunsCells(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	player := factory.CreatePlayer(e, 300, 0)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	maxStep := 0.0
	prevY := obj.Y
	for i := 0; i < 300 && physics.OnGround == nil; i++ {
		tick(e)
		if step := obj.Y - prevY; step > maxStep {
			maxStep = step
		}
		prevY = obj.Y
	}

	maxPerTick := cfg.Physics.VerticalSpeedClamp * testDT
	assert.LessOrEqual(t, maxStep, maxPerTick+0.001, "clamped fall must stay within one cell per tick")
	require.NotNil(t, physics.OnGround, "must land, not tunnel through the floor")
	assert.InDelta(t, 320.0, obj.Bottom(), 0.001)
}
