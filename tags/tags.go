package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Enemy            = donburi.NewTag().SetName("Enemy")
	Wall             = donburi.NewTag().SetName("Wall")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Hitbox           = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlatform  = "platform"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvHitbox    = "hitbox"
)
