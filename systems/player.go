package systems

import (
	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/gamemath"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers steps every player agent: timers, input-driven actions,
// state dispatch and clip selection, in that order. Velocity integration and
// collision response run in later systems on the same tick.
func UpdatePlayers(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(ecs, e, dt)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	input := components.Input.Get(e)
	state := components.State.Get(e)
	animData := components.Animation.Get(e)
	obj := components.Object.Get(e).Object

	// Timers run every tick regardless of state. The dash cooldown in
	// particular keeps counting while attacking or staggered.
	state.StateTimer += dt
	if player.DashCooldown > 0 {
		player.DashCooldown -= dt
	}
	if player.InvulnTimer > 0 {
		player.InvulnTimer -= dt
	}

	handlePlayerInput(ecs, e, player, physics, input, state, obj, dt)
	updatePlayerState(player, physics, input, state, animData, obj, dt)
	animData.Select(state.CurrentState)
}

// handlePlayerInput turns the tick's input snapshot into actions and
// steering. Locked states ignore it entirely: no new actions, no steering,
// and crucially no facing changes.
func handlePlayerInput(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, input *components.InputData, state *components.StateData, obj *resolv.Object, dt float64) {
	if isInLockedState(state.CurrentState) {
		return
	}

	// Action priority when several edges land on one tick: attack, then
	// dash, then jump.
	switch {
	case input.Attack.JustPressed:
		enterAttackState(ecs, e, player, physics, state)
		return
	case input.Dash.JustPressed && player.DashCooldown <= 0:
		enterDashState(player, physics, state)
		return
	case input.Jump.JustPressed && player.JumpsUsed < cfg.Player.MaxJumps:
		performJump(player, physics, state, obj)
		return
	}

	// Steering. Wall slides ignore the axis here; pressing away from the
	// wall is handled by the slide's own exit check.
	if state.CurrentState == cfg.WallSlide {
		return
	}
	if input.Axis != 0 {
		physics.SpeedX += cfg.Player.Acceleration * input.Axis * dt
		player.Direction.X = gamemath.Sign(input.Axis)
	} else {
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction*dt)
	}
}

// performJump consumes a jump charge. From a wall slide it also kicks the
// player away from the wall.
func performJump(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object) {
	if state.CurrentState == cfg.WallSlide && physics.WallSliding != nil {
		away := -wallSide(physics.WallSliding, obj)
		physics.SpeedX = cfg.Player.WallJumpPush * away
		player.Direction.X = away
		physics.WallSliding = nil
		player.WallSlideEase = nil
	}

	physics.SpeedY = -cfg.Player.JumpSpeed
	player.JumpsUsed++
	enterState(state, cfg.Jump)
}

// enterDashState starts a dash: facing is captured once, vertical motion is
// cancelled and the burst speed is held until the timer runs out.
func enterDashState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	physics.WallSliding = nil
	player.WallSlideEase = nil
	player.DashDirection = player.Direction.X
	physics.SpeedX = cfg.Player.DashSpeed * player.DashDirection
	physics.SpeedY = 0
	enterState(state, cfg.Dash)
}

// enterAttackState starts an attack and arms its hitbox in the same step, on
// the side the player faces right now.
func enterAttackState(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	physics.WallSliding = nil
	player.WallSlideEase = nil
	enterState(state, cfg.Attack)
	SpawnPlayerHitbox(ecs, e)
}

func updatePlayerState(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData, state *components.StateData, animData *components.AnimationData, obj *resolv.Object, dt float64) {
	switch state.CurrentState {
	case cfg.Idle, cfg.Run:
		// Re-derive the grounded locomotion state every tick: walking
		// off a ledge drops straight to Fall, stopping settles to
		// Idle.
		transitionToMovementState(player, physics, state)

	case cfg.Jump:
		if physics.OnGround != nil && physics.SpeedY >= 0 {
			transitionToMovementState(player, physics, state)
		} else if physics.SpeedY > 0 {
			if physics.WallSliding != nil {
				enterState(state, cfg.WallSlide)
			} else {
				enterState(state, cfg.Fall)
			}
		}

	case cfg.Fall:
		if physics.OnGround != nil {
			transitionToMovementState(player, physics, state)
		} else if physics.WallSliding != nil && physics.SpeedY >= 0 {
			enterState(state, cfg.WallSlide)
		}

	case cfg.WallSlide:
		updateWallSlideState(player, physics, input, state, obj, dt)

	case cfg.Dash:
		// Hold the burst; the dash owns both velocity axes.
		physics.SpeedX = cfg.Player.DashSpeed * player.DashDirection
		physics.SpeedY = 0
		if state.StateTimer >= cfg.Player.DashDuration {
			physics.SpeedX = 0
			player.DashCooldown = cfg.Player.DashCooldown
			transitionToMovementState(player, physics, state)
		}

	case cfg.Attack:
		// Entry momentum carries, decaying. The hitbox system disarms
		// the hitbox as soon as the state is left, on this same tick.
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.AttackFriction*dt)
		if state.StateTimer >= cfg.Player.AttackDuration {
			transitionToMovementState(player, physics, state)
		}

	case cfg.Hit:
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction*dt)
		if animData.Finished(cfg.Hit) {
			transitionToMovementState(player, physics, state)
		}
	}
}

func updateWallSlideState(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData, state *components.StateData, obj *resolv.Object, dt float64) {
	if physics.OnGround != nil {
		physics.WallSliding = nil
		player.WallSlideEase = nil
		transitionToMovementState(player, physics, state)
		return
	}
	if physics.WallSliding == nil {
		// The wall ended mid-slide.
		player.WallSlideEase = nil
		enterState(state, cfg.Fall)
		return
	}
	if input.Axis*wallSide(physics.WallSliding, obj) <= 0 {
		// No longer pressing into the wall.
		physics.WallSliding = nil
		player.WallSlideEase = nil
		enterState(state, cfg.Fall)
		return
	}

	// Ease vertical speed from its value at wall contact down to the
	// slide's slow terminal velocity.
	if player.WallSlideEase == nil {
		player.WallSlideEase = gween.New(
			float32(physics.SpeedY),
			float32(cfg.Physics.WallSlideSpeed),
			float32(cfg.Player.WallSlideEaseTime),
			ease.OutQuad,
		)
	}
	v, _ := player.WallSlideEase.Update(float32(dt))
	physics.SpeedY = float64(v)
}

// transitionToMovementState picks the locomotion state matching the current
// physical situation. It is the only path into Idle and Run, which is what
// makes the jump-charge reset reliable.
func transitionToMovementState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	next := cfg.Idle
	switch {
	case physics.WallSliding != nil && physics.SpeedY >= 0:
		next = cfg.WallSlide
	case physics.OnGround == nil:
		if physics.SpeedY < 0 {
			next = cfg.Jump
		} else {
			next = cfg.Fall
		}
	case physics.SpeedX != 0:
		next = cfg.Run
	}

	if next == cfg.Idle || next == cfg.Run {
		player.JumpsUsed = 0
	}
	enterState(state, next)
}

// enterState switches an agent's state and restarts its timer. Re-entering
// the current state is a no-op so a redundant transition never resets a
// running timer.
func enterState(state *components.StateData, next cfg.StateID) {
	if state.CurrentState == next {
		return
	}
	state.CurrentState = next
	state.StateTimer = 0
}

// isInLockedState reports whether the state ignores input and freezes
// facing.
func isInLockedState(s cfg.StateID) bool {
	return s == cfg.Dash || s == cfg.Attack || s == cfg.Hit
}

// wallSide returns which side wall is on relative to obj: -1 left, 1 right.
func wallSide(wall, obj *resolv.Object) float64 {
	return gamemath.Sign((wall.X + wall.W/2) - (obj.X + obj.W/2))
}
