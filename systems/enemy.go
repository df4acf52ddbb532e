package systems

import (
	"math"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/gamemath"
	"github.com/greyfall/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Probe distances for the walking AI, in pixels past the agent's edge.
const (
	ledgeProbeAhead = 8.0
	ledgeProbeDepth = 4.0
	wallProbeAhead  = 4.0
)

// UpdateEnemies steps every enemy agent. Same shape as the player update:
// timers, sensing, state dispatch, clip selection.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		updateSingleEnemy(ecs, e, dt)
	})
}

func updateSingleEnemy(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	animData := components.Animation.Get(e)
	obj := components.Object.Get(e).Object

	state.StateTimer += dt
	if enemy.AttackCooldown > 0 {
		enemy.AttackCooldown -= dt
	}
	if enemy.InvulnTimer > 0 {
		enemy.InvulnTimer -= dt
	}

	distance := targetDistance(ecs, enemy, obj)

	switch state.CurrentState {
	case cfg.Patrol:
		handlePatrolState(enemy, physics, state, obj, distance)
	case cfg.Chase:
		handleChaseState(enemy, physics, state, obj, distance)
	case cfg.Pause:
		handlePauseState(enemy, physics, state, distance)
	case cfg.Charge:
		handleChargeState(ecs, e, enemy, physics, state, animData)
	case cfg.Attack:
		handleEnemyAttackState(enemy, physics, state, animData, dt)
	case cfg.Hit:
		handleEnemyHitState(physics, state, animData, dt)
	}

	updateEnemyAnimation(physics, state, animData)
}

// targetDistance returns the horizontal distance to the cached target,
// resolving the cache lazily. A target that no longer exists clears the
// cache so the next player to appear gets picked up; while none exists the
// distance is infinite, which reads as "nothing in range" everywhere.
func targetDistance(ecs *ecs.ECS, enemy *components.EnemyData, obj *resolv.Object) float64 {
	if enemy.Target != nil && !enemy.Target.Valid() {
		enemy.Target = nil
	}
	if enemy.Target == nil {
		if target, ok := tags.Player.First(ecs.World); ok {
			enemy.Target = target
		}
	}
	if enemy.Target == nil {
		return math.Inf(1)
	}
	targetObj := components.Object.Get(enemy.Target).Object
	return math.Abs(targetObj.X - obj.X)
}

func handlePatrolState(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object, distance float64) {
	if distance <= enemy.DetectRange {
		physics.SpeedX = 0
		enterState(state, cfg.Chase)
		return
	}

	// Walk the ledge: reverse at walls and drops, stand if boxed in on
	// both sides. A boxed-in enemy keeps watching for the target.
	dir := enemy.Direction.X
	if !canWalkAhead(obj, dir) {
		if !canWalkAhead(obj, -dir) {
			physics.SpeedX = 0
			return
		}
		dir = -dir
		enemy.Direction.X = dir
	}
	physics.SpeedX = enemy.PatrolSpeed * dir
}

func handleChaseState(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object, distance float64) {
	// A chase only runs so long before the enemy must regroup, no matter
	// how close the target is.
	if state.StateTimer >= enemy.TypeConfig.ChaseDuration {
		physics.SpeedX = 0
		enterState(state, cfg.Pause)
		return
	}

	// Give up beyond the widened range. The gap between DetectRange and
	// this boundary keeps jitter at the detect edge from flapping.
	if distance > enemy.DetectRange*cfg.Enemy.HysteresisMultiplier {
		physics.SpeedX = 0
		enterState(state, cfg.Patrol)
		return
	}

	faceTarget(enemy, obj)

	if distance <= enemy.AttackRange && enemy.AttackCooldown <= 0 && physics.OnGround != nil {
		physics.SpeedX = 0
		enterState(state, cfg.Charge)
		return
	}

	// Advance, but never off a ledge.
	if distance > enemy.StoppingDistance && groundAhead(obj, enemy.Direction.X) {
		physics.SpeedX = enemy.ChaseSpeed * enemy.Direction.X
	} else {
		physics.SpeedX = 0
	}
}

func handlePauseState(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, distance float64) {
	physics.SpeedX = 0
	if state.StateTimer < enemy.TypeConfig.PauseDuration {
		return
	}
	// Re-evaluate from scratch: a fresh chase if the target is still in
	// detect range, otherwise back to walking the ledge.
	if distance <= enemy.DetectRange {
		enterState(state, cfg.Chase)
	} else {
		enterState(state, cfg.Patrol)
	}
}

func handleChargeState(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, animData *components.AnimationData) {
	// The windup roots the enemy in place; facing stays where it was on
	// entry.
	physics.SpeedX = 0
	if animData.Finished(cfg.Charge) {
		enterEnemyAttack(ecs, e, enemy, physics, state)
	}
}

// enterEnemyAttack fires the one-time leap impulse and arms the hitbox on
// the facing side.
func enterEnemyAttack(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData) {
	physics.SpeedX = enemy.TypeConfig.LeapSpeedX * enemy.Direction.X
	physics.SpeedY = -enemy.TypeConfig.LeapSpeedY
	enterState(state, cfg.Attack)
	SpawnEnemyHitbox(ecs, e)
}

func handleEnemyAttackState(enemy *components.EnemyData, physics *components.PhysicsData, state *components.StateData, animData *components.AnimationData, dt float64) {
	// Airborne, the leap keeps its speed; once landed it bleeds off.
	if physics.OnGround != nil {
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction*dt)
	}
	if animData.Finished(cfg.Attack) {
		physics.SpeedX = 0
		enemy.AttackCooldown = enemy.TypeConfig.AttackCooldown
		enterState(state, cfg.Pause)
	}
}

func handleEnemyHitState(physics *components.PhysicsData, state *components.StateData, animData *components.AnimationData, dt float64) {
	// Knockback decays while the reaction clip plays; recovery always
	// resumes the patrol.
	physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction*dt)
	if animData.Finished(cfg.Hit) {
		enterState(state, cfg.Patrol)
	}
}

func faceTarget(enemy *components.EnemyData, obj *resolv.Object) {
	if enemy.Target == nil {
		return
	}
	targetObj := components.Object.Get(enemy.Target).Object
	if targetObj.X > obj.X {
		enemy.Direction.X = cfg.DirectionRight
	} else {
		enemy.Direction.X = cfg.DirectionLeft
	}
}

// canWalkAhead reports whether one more step in dir neither runs into a wall
// nor walks off a drop.
func canWalkAhead(obj *resolv.Object, dir float64) bool {
	return !wallAhead(obj, dir) && groundAhead(obj, dir)
}

func wallAhead(obj *resolv.Object, dir float64) bool {
	return obj.Check(wallProbeAhead*dir, 0, tags.ResolvSolid) != nil
}

// groundAhead probes past the leading edge and down below the feet; nil
// means a drop.
func groundAhead(obj *resolv.Object, dir float64) bool {
	return obj.Check(ledgeProbeAhead*dir, obj.H+ledgeProbeDepth, tags.ResolvSolid, tags.ResolvPlatform) != nil
}

// Enemies map Pause onto the idle clip, and a patrol with nowhere to walk
// shows idle rather than a walk cycle against thin air.
func updateEnemyAnimation(physics *components.PhysicsData, state *components.StateData, animData *components.AnimationData) {
	clip := state.CurrentState
	switch state.CurrentState {
	case cfg.Pause:
		clip = cfg.Idle
	case cfg.Patrol:
		if physics.SpeedX == 0 {
			clip = cfg.Idle
		}
	}
	animData.Select(clip)
}
