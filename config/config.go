// Package config holds every gameplay constant: world geometry, physics,
// per-agent movement and combat tuning, input bindings and animation clip
// tables. Values are plain package vars populated in init so tests and the
// tuning overlay can adjust them.
package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity, system and renderer lives on.
const Default = ecs.LayerID(0)

// Facing directions. Agents only ever face fully left or fully right.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// WorldConfig describes the simulation space and the fixed tick.
type WorldConfig struct {
	Width    int
	Height   int
	CellSize int

	// FixedDT is the timestep in seconds used when the host does not
	// supply its own clock. 60 ticks per second.
	FixedDT float64
}

// PhysicsConfig holds globals shared by all agents. Speeds are px/s,
// accelerations px/s².
type PhysicsConfig struct {
	Gravity float64

	// WallSlideSpeed is the slow terminal velocity a wall slide eases
	// down to.
	WallSlideSpeed float64

	// VerticalSpeedClamp bounds vertical speed before collision
	// resolution so a single tick can never tunnel through a cell.
	VerticalSpeedClamp float64
}

// PlayerConfig tunes the player agent.
type PlayerConfig struct {
	Acceleration float64
	MaxSpeed     float64
	Friction     float64

	// AttackFriction decays horizontal speed while an attack is active.
	AttackFriction float64

	JumpSpeed float64

	// WallJumpPush is the horizontal kick away from the wall when jumping
	// out of a wall slide.
	WallJumpPush float64

	// MaxJumps caps jumps between landings; air jumps count against it.
	MaxJumps int

	DashSpeed    float64
	DashDuration float64
	DashCooldown float64

	AttackDuration float64

	// WallSlideEaseTime is how long vertical speed takes to ease from its
	// value at wall contact down to Physics.WallSlideSpeed.
	WallSlideEaseTime float64

	Health          int
	CollisionWidth  int
	CollisionHeight int
}

// EnemyTypeConfig tunes one enemy archetype. The Enemy.Types map holds one
// entry per spawnable kind.
type EnemyTypeConfig struct {
	Health int

	PatrolSpeed float64
	ChaseSpeed  float64
	MaxSpeed    float64
	Friction    float64
	Gravity     float64

	// DetectRange starts a chase. Giving up uses
	// DetectRange*Enemy.HysteresisMultiplier so the boundary doesn't
	// flicker.
	DetectRange float64

	AttackRange float64

	// StoppingDistance keeps a chasing enemy from standing inside the
	// target.
	StoppingDistance float64

	// ChaseDuration bounds a single chase; when it runs out the enemy
	// pauses to regroup no matter how close the target is.
	ChaseDuration float64
	PauseDuration float64

	AttackCooldown float64

	// Leap speeds applied once when the attack starts. LeapSpeedY is the
	// upward magnitude.
	LeapSpeedX float64
	LeapSpeedY float64

	Damage         int
	KnockbackForce float64

	CollisionWidth  int
	CollisionHeight int
}

// EnemyConfig groups the per-type table with shared AI tuning.
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// HysteresisMultiplier widens the give-up distance relative to
	// DetectRange.
	HysteresisMultiplier float64
}

// CombatConfig tunes hit detection shared by both agent kinds.
type CombatConfig struct {
	HitboxWidth  float64
	HitboxHeight float64

	PlayerDamage    int
	PlayerKnockback float64

	// KnockbackUpwardForce is the vertical pop added to any knockback so
	// struck agents visibly leave the ground.
	KnockbackUpwardForce float64

	PlayerInvulnTime float64
	EnemyInvulnTime  float64
}

// CameraConfig tunes the follow camera used by the demo renderer.
type CameraConfig struct {
	// Smoothing is the exponential catch-up rate per second.
	Smoothing float64
}

// Common colors used by the demo renderers.
var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
)

var (
	World   WorldConfig
	Physics PhysicsConfig
	Player  PlayerConfig
	Enemy   EnemyConfig
	Combat  CombatConfig
	Camera  CameraConfig
)

func init() {
	World = WorldConfig{
		Width:    640,
		Height:   360,
		CellSize: 16,
		FixedDT:  1.0 / 60.0,
	}

	Physics = PhysicsConfig{
		Gravity:            2700,
		WallSlideSpeed:     60,
		VerticalSpeedClamp: 960,
	}

	Player = PlayerConfig{
		Acceleration:      2700,
		MaxSpeed:          360,
		Friction:          1800,
		AttackFriction:    720,
		JumpSpeed:         900,
		WallJumpPush:      300,
		MaxJumps:          2,
		DashSpeed:         900,
		DashDuration:      0.22,
		DashCooldown:      0.6,
		AttackDuration:    0.4,
		WallSlideEaseTime: 0.25,
		Health:            100,
		CollisionWidth:    16,
		CollisionHeight:   24,
	}

	Enemy = EnemyConfig{
		HysteresisMultiplier: 1.5,
		Types: map[string]EnemyTypeConfig{
			"stalker": {
				Health:           60,
				PatrolSpeed:      120,
				ChaseSpeed:       168,
				MaxSpeed:         360,
				Friction:         1800,
				Gravity:          2700,
				DetectRange:      120,
				AttackRange:      40,
				StoppingDistance: 24,
				ChaseDuration:    4.0,
				PauseDuration:    0.9,
				AttackCooldown:   1.6,
				LeapSpeedX:       270,
				LeapSpeedY:       330,
				Damage:           15,
				KnockbackForce:   270,
				CollisionWidth:   16,
				CollisionHeight:  22,
			},
			"brute": {
				Health:           120,
				PatrolSpeed:      78,
				ChaseSpeed:       120,
				MaxSpeed:         300,
				Friction:         1800,
				Gravity:          2700,
				DetectRange:      150,
				AttackRange:      52,
				StoppingDistance: 30,
				ChaseDuration:    5.0,
				PauseDuration:    1.4,
				AttackCooldown:   2.4,
				LeapSpeedX:       210,
				LeapSpeedY:       270,
				Damage:           30,
				KnockbackForce:   390,
				CollisionWidth:   24,
				CollisionHeight:  30,
			},
		},
	}

	Combat = CombatConfig{
		HitboxWidth:          18,
		HitboxHeight:         14,
		PlayerDamage:         25,
		PlayerKnockback:      300,
		KnockbackUpwardForce: 240,
		PlayerInvulnTime:     0.5,
		EnemyInvulnTime:      0.35,
	}

	Camera = CameraConfig{
		Smoothing: 6.0,
	}
}
