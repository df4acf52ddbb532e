package components

import (
	"github.com/greyfall/brawlcore/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // key into config.Enemy.Types
	TypeConfig *config.EnemyTypeConfig // cached reference to type configuration
	Direction  Vector

	// Movement and AI ranges, copied from the type config at spawn.
	PatrolSpeed      float64
	ChaseSpeed       float64
	DetectRange      float64 // distance that starts a chase
	AttackRange      float64 // distance to start the attack windup
	StoppingDistance float64 // distance to stop before attacking

	// Target is the cached player entry. Resolved lazily on first use and
	// re-resolved only after the cached entry dies; while no target
	// exists the enemy simply patrols.
	Target *donburi.Entry

	// Combat
	AttackCooldown float64        // seconds until the next attack may start
	InvulnTimer    float64        // invulnerability window after being hit
	ActiveHitbox   *donburi.Entry // direct reference to the active hitbox
}

var Enemy = donburi.NewComponentType[EnemyData]()
