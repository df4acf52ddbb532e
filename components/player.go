package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector

	// JumpsUsed counts jumps since the last transition into Idle or Run.
	// Only those transitions reset it; air time and wall contact do not.
	JumpsUsed int

	// DashDirection is the facing captured when the dash started; the
	// dash holds it even if the stick reverses mid-dash.
	DashDirection float64

	// DashCooldown counts down to zero from the moment a dash ends,
	// including interrupted dashes.
	DashCooldown float64

	InvulnTimer float64

	// WallSlideEase ramps vertical speed down to the slide's terminal
	// velocity after wall contact.
	WallSlideEase *gween.Tween

	// ActiveHitbox is the live attack hitbox entry, nil outside Attack.
	ActiveHitbox *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()
