package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/systems/factory"
)

func TestPlayerSwingStrikesEnemy(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	player := factory.CreatePlayer(e, 300, 290)
	enemy := factory.CreateEnemy(e, 330, 296, "stalker")
	input := components.Input.Get(player)
	enemyData := components.Enemy.Get(enemy)
	enemyHealth := components.Health.Get(enemy)
	enemyPhysics := components.Physics.Get(enemy)

	settle(t, e, player)
	settle(t, e, enemy)

	pressOnce(e, &input.Attack)

	// Damage, stagger, knockback and the hit flash all land on the same
	// tick as the swing.
	assert.Equal(t, enemyData.TypeConfig.Health-cfg.Combat.PlayerDamage, enemyHealth.Current)
	assert.Equal(t, cfg.Hit, currentState(enemy))
	assert.Greater(t, enemyData.InvulnTimer, 0.0)
	assert.Equal(t, cfg.Combat.PlayerKnockback, enemyPhysics.SpeedX)
	assert.Equal(t, -cfg.Combat.KnockbackUpwardForce, enemyPhysics.SpeedY)
	assert.Greater(t, components.Flash.Get(enemy).Timer, 0.0)

	// One swing, one hit: the rest of the swing cannot strike the same
	// target again, even after its invulnerability lapses.
	hpAfterHit := enemyHealth.Current
	tickN(e, ticksFor(cfg.Player.AttackDuration))
	assert.Equal(t, hpAfterHit, enemyHealth.Current)
	assert.Equal(t, 0, countHitboxes(e))
}

func TestSimultaneousSwingsTradeDeterministically(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	a := factory.CreatePlayer(e, 300, 290)
	b := factory.CreatePlayer(e, 330, 290)
	aInput := components.Input.Get(a)
	bInput := components.Input.Get(b)
	components.Player.Get(b).Direction.X = cfg.DirectionLeft

	settle(t, e, a)
	settle(t, e, b)

	// Both swing on the same tick. The first hitbox to process staggers
	// the other player, which disarms the victim's swing before it can
	// land: no mutual knockout.
	aInput.Attack.JustPressed = true
	bInput.Attack.JustPressed = true
	tick(e)
	aInput.Attack = components.ActionState{}
	bInput.Attack = components.ActionState{}

	assert.Equal(t, cfg.Attack, currentState(a))
	assert.Equal(t, cfg.Player.Health, components.Health.Get(a).Current)

	assert.Equal(t, cfg.Hit, currentState(b))
	assert.Equal(t, cfg.Player.Health-cfg.Combat.PlayerDamage, components.Health.Get(b).Current)

	// The loser's hitbox was swept on the very tick it was disarmed.
	assert.Equal(t, 1, countHitboxes(e))
	assert.NotNil(t, components.Player.Get(a).ActiveHitbox)
	assert.Nil(t, components.Player.Get(b).ActiveHitbox)
}

func TestInvulnerabilityBlocksSecondAttacker(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	a := factory.CreatePlayer(e, 300, 290)
	b := factory.CreatePlayer(e, 330, 290)
	c := factory.CreatePlayer(e, 352, 290)
	aInput := components.Input.Get(a)
	cInput := components.Input.Get(c)
	components.Player.Get(c).Direction.X = cfg.DirectionLeft

	settle(t, e, a)
	settle(t, e, b)
	settle(t, e, c)

	// Both neighbors swing at b on the same tick. The first strike opens
	// b's invulnerability window; the second bounces off it.
	aInput.Attack.JustPressed = true
	cInput.Attack.JustPressed = true
	tick(e)
	aInput.Attack = components.ActionState{}
	cInput.Attack = components.ActionState{}

	assert.Equal(t, cfg.Player.Health-cfg.Combat.PlayerDamage, components.Health.Get(b).Current)
	assert.Equal(t, cfg.Hit, currentState(b))

	// Both swings stay armed; neither attacker was struck.
	assert.Equal(t, 2, countHitboxes(e))
	assert.Equal(t, cfg.Attack, currentState(a))
	assert.Equal(t, cfg.Attack, currentState(c))
}

func TestStruckAttackerLosesHitboxSameTick(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	player := factory.CreatePlayer(e, 100, 290)
	input := components.Input.Get(player)
	playerData := components.Player.Get(player)
	obj := components.Object.Get(player).Object

	settle(t, e, player)
	tick(e)

	pressOnce(e, &input.Attack)
	require.Equal(t, 1, countHitboxes(e))

	ApplyStruck(player, obj.X+obj.W/2+50)
	require.Equal(t, cfg.Hit, currentState(player))

	tick(e)
	assert.Equal(t, 0, countHitboxes(e))
	assert.Nil(t, playerData.ActiveHitbox)
}

func TestHitboxTracksOwnerWhileArmed(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	player := factory.CreatePlayer(e, 100, 290)
	input := components.Input.Get(player)
	playerData := components.Player.Get(player)
	obj := components.Object.Get(player).Object

	settle(t, e, player)
	tick(e)

	pressOnce(e, &input.Attack)
	require.NotNil(t, playerData.ActiveHitbox)
	hitboxObj := components.Object.Get(playerData.ActiveHitbox).Object

	obj.X += 40
	obj.Update()
	tick(e)
	assert.Equal(t, obj.X+obj.W, hitboxObj.X)
}

func TestDamageDrainAccumulatesAndSetsVelocity(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	enemy := factory.CreateEnemy(e, 300, 296, "stalker")
	health := components.Health.Get(enemy)
	physics := components.Physics.Get(enemy)

	settle(t, e, enemy)

	// Two sources on one tick: damage stacks, the newer knockback wins,
	// and the result overwrites the current velocity instead of adding.
	physics.SpeedX = -168
	queueDamage(enemy, 10, 300, -240)
	queueDamage(enemy, 5, -80, -100)
	UpdateCombat(e)

	assert.Equal(t, 45, health.Current)
	assert.Equal(t, -80.0, physics.SpeedX)
	assert.Equal(t, -100.0, physics.SpeedY)
	assert.False(t, enemy.HasComponent(components.DamageEvent))

	// The event is gone; draining again changes nothing.
	UpdateCombat(e)
	assert.Equal(t, 45, health.Current)
}

func TestHealthFloorsAtZeroAndEntityStays(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	enemy := factory.CreateEnemy(e, 300, 296, "stalker")
	health := components.Health.Get(enemy)

	settle(t, e, enemy)

	queueDamage(enemy, 999, 0, 0)
	UpdateCombat(e)

	// Health floors at zero; what to do with the body is the host's
	// decision, so the entity survives.
	assert.Equal(t, 0, health.Current)
	assert.True(t, enemy.Valid())

	tickN(e, 5)
	assert.True(t, enemy.Valid())
}
