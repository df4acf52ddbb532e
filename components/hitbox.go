package components

import "github.com/yohamta/donburi"

type HitboxData struct {
	Owner          *donburi.Entry // the entity whose attack created this hitbox
	Damage         int
	KnockbackForce float64

	// Facing is the owner's direction captured when the attack started.
	// The hitbox stays on that side even if the owner turns.
	Facing float64

	HitEntities map[*donburi.Entry]bool // entities already hit by this swing
}

var Hitbox = donburi.NewComponentType[HitboxData]()
