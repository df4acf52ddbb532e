package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/gamemath"
	"github.com/greyfall/brawlcore/tags"
)

// platformLandSlack is how far an agent's feet may already be below a
// platform's top edge and still land on it. Anything deeper passes through.
const platformLandSlack = 4.0

// UpdateCollisions moves every agent by its velocity, resolving contacts
// against solids and one-way platforms. Movement happens exactly once per
// tick, horizontal axis first, and the contact witnesses written here
// (OnGround, WallSliding) are what the next tick's state machines read.
// Agents do not block each other; body overlap is the hitbox systems'
// concern.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		resolveHorizontal(physics, obj, physics.SpeedX*dt)
		resolveVertical(physics, obj, dt)
		updateWallSliding(physics, obj)
	})
}

func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			// Move flush against the wall and stop.
			dx = check.ContactWithObject(solids[0]).X()
			physics.SpeedX = 0
			setWallSlidingIfAirborne(physics, solids[0])
		}
	}
	obj.X += dx
}

func resolveVertical(physics *components.PhysicsData, obj *resolv.Object, dt float64) {
	physics.OnGround = nil

	speedY := gamemath.ClampSpeed(physics.SpeedY, cfg.Physics.VerticalSpeedClamp)
	dy := speedY * dt

	// Probe one pixel past the feet so the ground witness survives
	// standing still.
	checkDY := dy
	if speedY >= 0 {
		checkDY = dy + 1
	}

	check := obj.Check(0, checkDY, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		obj.Y += dy
		return
	}

	if speedY < 0 {
		// Rising. Only solids bump the head; platforms are passable
		// from below.
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			physics.SpeedY = 0
		}
		obj.Y += dy
		return
	}

	// Falling or standing. One-way platforms only catch feet arriving
	// from above.
	if platforms := check.ObjectsByTags(tags.ResolvPlatform); len(platforms) > 0 {
		platform := platforms[0]
		if obj.Bottom() < platform.Y+platformLandSlack {
			dy = check.ContactWithObject(platform).Y()
			physics.OnGround = platform
			physics.SpeedY = 0
		}
	}
	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		dy = check.ContactWithObject(solids[0]).Y()
		physics.OnGround = solids[0]
		physics.SpeedY = 0
	}
	obj.Y += dy
}

func setWallSlidingIfAirborne(physics *components.PhysicsData, wall *resolv.Object) {
	if physics.OnGround == nil {
		physics.WallSliding = wall
	}
}

// updateWallSliding drops the wall witness once the agent lands or the wall
// is no longer beside it. Letting go of the stick is the state machine's
// exit, not ours.
func updateWallSliding(physics *components.PhysicsData, obj *resolv.Object) {
	if physics.WallSliding == nil {
		return
	}
	if physics.OnGround != nil {
		physics.WallSliding = nil
		return
	}
	dir := wallSide(physics.WallSliding, obj)
	if obj.Check(wallProbeAhead*dir, 0, tags.ResolvSolid) == nil {
		physics.WallSliding = nil
	}
}
