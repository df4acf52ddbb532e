package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData carries per-agent movement state. Speeds are px/s. The
// *resolv.Object fields are contact witnesses set by the collision system
// each tick: nil means no contact.
type PhysicsData struct {
	SpeedX         float64
	SpeedY         float64
	Gravity        float64
	Friction       float64
	AttackFriction float64
	MaxSpeed       float64
	OnGround       *resolv.Object
	WallSliding    *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
