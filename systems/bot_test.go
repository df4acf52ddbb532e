package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/systems/factory"
)

func newBotPlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	player := factory.CreatePlayer(e, x, y)
	donburi.Add(player, components.Bot, &components.BotData{})
	return player
}

func TestBotWalksTowardDistantEnemy(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	player := newBotPlayer(e, 100, 290)
	enemy := factory.CreateEnemy(e, 400, 294, "stalker")
	settle(t, e, player)
	settle(t, e, enemy)

	obj := components.Object.Get(player).Object
	input := components.Input.Get(player)

	tickN(e, 30)

	assert.Greater(t, obj.X, 130.0, "bot should close toward the enemy")
	assert.Equal(t, 1.0, input.Axis)
}

func TestBotAttacksInReach(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	player := newBotPlayer(e, 100, 290)
	enemy := factory.CreateEnemy(e, 130, 292, "stalker")
	components.Enemy.Get(enemy).AttackCooldown = 999

	tickUntil(t, e, 10, func() bool { return currentState(player) == cfg.Attack })

	enemyData := components.Enemy.Get(enemy)
	assert.Equal(t, enemyData.TypeConfig.Health-cfg.Combat.PlayerDamage, components.Health.Get(enemy).Current)
	assert.Equal(t, cfg.Hit, currentState(enemy))
}

func TestBotHopsWallsInTheWay(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	factory.CreateWall(e, 320, 96, 16, 224)
	player := newBotPlayer(e, 260, 290)
	factory.CreateEnemy(e, 600, 290, "stalker")
	settle(t, e, player)

	tickUntil(t, e, 200, func() bool { return currentState(player) == cfg.Jump })
}

func TestBotIdlesWithoutTargets(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	player := newBotPlayer(e, 100, 290)
	settle(t, e, player)

	obj := components.Object.Get(player).Object
	startX := obj.X

	tickN(e, 30)

	assert.Equal(t, cfg.Idle, currentState(player))
	assert.Equal(t, startX, obj.X)
	assert.Equal(t, 0.0, components.Input.Get(player).Axis)
}
