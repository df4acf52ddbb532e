package systems

import (
	"math"
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/gamemath"
	"github.com/greyfall/brawlcore/tags"
)

// Fixed seed keeps scripted runs reproducible.
var rng = rand.New(rand.NewSource(42))

// UpdateBots writes input snapshots for scripted players. Must run after
// ReadInput and before UpdatePlayers so a bot's intent wins over the
// keyboard and reaches the state machine the same tick.
func UpdateBots(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Bot.Each(ecs.World, func(e *donburi.Entry) {
		updateSingleBot(ecs, e, dt)
	})
}

func updateSingleBot(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	bot := components.Bot.Get(e)
	input := components.Input.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object

	bot.DecisionTimer -= dt
	decide := bot.DecisionTimer <= 0
	if decide {
		bot.DecisionTimer = cfg.Bot.DecisionInterval
	}

	var axis float64
	var wantJump, wantDash, wantAttack bool

	if target := nearestEnemy(ecs, obj); target != nil {
		dx := (target.X + target.W/2) - (obj.X + obj.W/2)
		dy := (target.Y + target.H/2) - (obj.Y + obj.H/2)
		dist := math.Abs(dx)

		if dist > cfg.Bot.AttackReach {
			axis = gamemath.Sign(dx)
		}

		switch {
		case decide && dist <= cfg.Bot.AttackReach:
			wantAttack = true
		case decide && dist > cfg.Bot.DashRange:
			wantDash = rng.Float64() < cfg.Bot.DashChance
		}

		if decide && physics.OnGround != nil {
			// Hop over walls in the way, or up toward a higher
			// target.
			if wallAhead(obj, gamemath.Sign(dx)) || dy < -cfg.Bot.HopHeight {
				wantJump = true
			}
		}
		if decide && physics.WallSliding != nil {
			wantJump = true
		}
	}

	input.Axis = axis
	applyActionState(&input.Jump, wantJump)
	applyActionState(&input.Dash, wantDash)
	applyActionState(&input.Attack, wantAttack)
}

func nearestEnemy(ecs *ecs.ECS, from *resolv.Object) *resolv.Object {
	var nearest *resolv.Object
	best := math.MaxFloat64
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		d := math.Abs((obj.X + obj.W/2) - (from.X + from.W/2))
		if d < best {
			best = d
			nearest = obj
		}
	})
	return nearest
}
