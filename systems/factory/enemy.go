package factory

import (
	"log"

	"github.com/greyfall/brawlcore/archetypes"
	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, x, y float64, typeName string) *donburi.Entry {
	enemyType, ok := cfg.Enemy.Types[typeName]
	if !ok {
		log.Printf("Warning: unknown enemy type %q, spawning stalker instead", typeName)
		typeName = "stalker"
		enemyType = cfg.Enemy.Types[typeName]
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w := float64(enemyType.CollisionWidth)
	h := float64(enemyType.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:         typeName,
		TypeConfig:       &enemyType,
		Direction:        components.Vector{X: cfg.DirectionLeft},
		PatrolSpeed:      enemyType.PatrolSpeed,
		ChaseSpeed:       enemyType.ChaseSpeed,
		DetectRange:      enemyType.DetectRange,
		AttackRange:      enemyType.AttackRange,
		StoppingDistance: enemyType.StoppingDistance,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Patrol,
		PreviousState: cfg.StateNone,
	})
	// AttackFriction stays zero: the attack leap keeps its horizontal
	// speed until the enemy lands.
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:  enemyType.Gravity,
		Friction: enemyType.Friction,
		MaxSpeed: enemyType.MaxSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Animation.SetValue(enemy, buildAnimationData(typeName))

	addToSpace(ecs, obj)

	return enemy
}
