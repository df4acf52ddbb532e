package components

import "github.com/yohamta/donburi"

// DamageEventData is attached to a struck entity and drained by the combat
// system on the same tick. Knockback is a velocity, applied as-is.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
