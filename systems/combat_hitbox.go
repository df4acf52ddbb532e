package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/archetypes"
	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/gamemath"
	"github.com/greyfall/brawlcore/tags"
)

// SpawnPlayerHitbox arms the player's attack hitbox for the swing that just
// started, on the side the player faces right now.
func SpawnPlayerHitbox(ecs *ecs.ECS, owner *donburi.Entry) {
	player := components.Player.Get(owner)
	player.ActiveHitbox = spawnHitbox(ecs, owner, player.Direction.X,
		cfg.Combat.PlayerDamage, cfg.Combat.PlayerKnockback)
}

// SpawnEnemyHitbox arms an enemy's attack hitbox with its type's damage and
// knockback.
func SpawnEnemyHitbox(ecs *ecs.ECS, owner *donburi.Entry) {
	enemy := components.Enemy.Get(owner)
	enemy.ActiveHitbox = spawnHitbox(ecs, owner, enemy.Direction.X,
		enemy.TypeConfig.Damage, enemy.TypeConfig.KnockbackForce)
}

func spawnHitbox(ecs *ecs.ECS, owner *donburi.Entry, facing float64, damage int, knockback float64) *donburi.Entry {
	entry := archetypes.Hitbox.Spawn(ecs)

	obj := resolv.NewObject(0, 0, cfg.Combat.HitboxWidth, cfg.Combat.HitboxHeight, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	components.Hitbox.SetValue(entry, components.HitboxData{
		Owner:          owner,
		Damage:         damage,
		KnockbackForce: knockback,
		Facing:         facing,
		HitEntities:    map[*donburi.Entry]bool{},
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	positionHitbox(obj, components.Object.Get(owner).Object, facing)

	return entry
}

// positionHitbox glues the hitbox to the owner's striking edge, on the side
// captured when the attack started.
func positionHitbox(obj, ownerObj *resolv.Object, facing float64) {
	if facing >= 0 {
		obj.X = ownerObj.X + ownerObj.W
	} else {
		obj.X = ownerObj.X - obj.W
	}
	obj.Y = ownerObj.Y + (ownerObj.H-obj.H)/2
	obj.Update()
}

// UpdateCombatHitboxes runs hit detection for every live hitbox, then sweeps
// away hitboxes whose owner is no longer mid-attack. The sweep runs after
// the strikes so an owner staggered during the strike pass loses its hitbox
// on this same tick.
func UpdateCombatHitboxes(ecs *ecs.ECS) {
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		if !hitboxArmed(hitbox) {
			return
		}
		obj := components.Object.Get(e).Object
		positionHitbox(obj, components.Object.Get(hitbox.Owner).Object, hitbox.Facing)

		check := obj.Check(0, 0, tags.ResolvCharacter)
		if check == nil {
			return
		}
		for _, targetObj := range check.Objects {
			target, ok := targetObj.Data.(*donburi.Entry)
			if !ok || !target.Valid() {
				continue
			}
			if !shouldHitTarget(hitbox, target) {
				continue
			}
			hitbox.HitEntities[target] = true
			strikeTarget(hitbox, target)
		}
	})

	var dead []*donburi.Entry
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		if !hitboxArmed(components.Hitbox.Get(e)) {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		removeHitbox(ecs, e)
	}
}

// hitboxArmed reports whether the hitbox can still land hits: its owner must
// exist and must still be in its attack.
func hitboxArmed(hitbox *components.HitboxData) bool {
	if hitbox.Owner == nil || !hitbox.Owner.Valid() {
		return false
	}
	if !hitbox.Owner.HasComponent(components.State) {
		return false
	}
	return components.State.Get(hitbox.Owner).CurrentState == cfg.Attack
}

// shouldHitTarget filters one overlap: never the owner, never twice per
// swing, never through an invulnerability window.
func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry) bool {
	if target.Entity() == hitbox.Owner.Entity() {
		return false
	}
	if hitbox.HitEntities[target] {
		return false
	}
	switch {
	case target.HasComponent(components.Player):
		return components.Player.Get(target).InvulnTimer <= 0
	case target.HasComponent(components.Enemy):
		return components.Enemy.Get(target).InvulnTimer <= 0
	}
	return false
}

// strikeTarget queues the hit's damage and knockback, then applies the
// synchronous struck reaction. Knockback pushes away from the owner's
// center, with a fixed upward pop.
func strikeTarget(hitbox *components.HitboxData, target *donburi.Entry) {
	ownerObj := components.Object.Get(hitbox.Owner).Object
	targetObj := components.Object.Get(target).Object
	away := gamemath.Sign((targetObj.X + targetObj.W/2) - (ownerObj.X + ownerObj.W/2))

	queueDamage(target, hitbox.Damage, hitbox.KnockbackForce*away, -cfg.Combat.KnockbackUpwardForce)
	ApplyStruck(target, ownerObj.X+ownerObj.W/2)
}

func queueDamage(target *donburi.Entry, amount int, knockbackX, knockbackY float64) {
	if target.HasComponent(components.DamageEvent) {
		// A second strike on the same tick stacks damage and keeps the
		// newer knockback.
		event := components.DamageEvent.Get(target)
		event.Amount += amount
		event.KnockbackX = knockbackX
		event.KnockbackY = knockbackY
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Amount:     amount,
		KnockbackX: knockbackX,
		KnockbackY: knockbackY,
	})
}

// ApplyStruck interrupts whatever the target is doing, turns it toward the
// attacker and staggers it with its invulnerability window running. Damage
// and knockback travel separately as a DamageEvent. attackerCenterX is the
// strike source's horizontal center.
func ApplyStruck(target *donburi.Entry, attackerCenterX float64) {
	state := components.State.Get(target)
	animData := components.Animation.Get(target)
	physics := components.Physics.Get(target)
	obj := components.Object.Get(target).Object

	facing := gamemath.Sign(attackerCenterX - (obj.X + obj.W/2))

	switch {
	case target.HasComponent(components.Player):
		player := components.Player.Get(target)
		player.InvulnTimer = cfg.Combat.PlayerInvulnTime
		player.Direction.X = facing
		if state.CurrentState == cfg.Dash {
			// An interrupted dash still pays its cooldown.
			player.DashCooldown = cfg.Player.DashCooldown
		}
		if state.CurrentState == cfg.WallSlide {
			physics.WallSliding = nil
			player.WallSlideEase = nil
		}
	case target.HasComponent(components.Enemy):
		enemy := components.Enemy.Get(target)
		enemy.InvulnTimer = cfg.Combat.EnemyInvulnTime
		enemy.Direction.X = facing
	}

	if target.HasComponent(components.Flash) {
		components.Flash.Get(target).Timer = hitFlashDuration
	}

	// A strike landing on an already staggered agent restarts the stagger
	// rather than re-entering it.
	if state.CurrentState == cfg.Hit {
		state.StateTimer = 0
		if animData.Current == cfg.Hit && animData.Active != nil {
			animData.Active.Restart()
		}
		return
	}

	enterState(state, cfg.Hit)
	animData.Select(cfg.Hit)
}

func removeHitbox(ecs *ecs.ECS, e *donburi.Entry) {
	hitbox := components.Hitbox.Get(e)
	if hitbox.Owner != nil && hitbox.Owner.Valid() {
		switch {
		case hitbox.Owner.HasComponent(components.Player):
			player := components.Player.Get(hitbox.Owner)
			if player.ActiveHitbox == e {
				player.ActiveHitbox = nil
			}
		case hitbox.Owner.HasComponent(components.Enemy):
			enemy := components.Enemy.Get(hitbox.Owner)
			if enemy.ActiveHitbox == e {
				enemy.ActiveHitbox = nil
			}
		}
	}

	obj := components.Object.Get(e).Object
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
	ecs.World.Remove(e.Entity())
}
