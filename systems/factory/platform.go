package factory

import (
	"github.com/greyfall/brawlcore/archetypes"
	"github.com/greyfall/brawlcore/components"
	"github.com/greyfall/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a one-way platform: solid from above, passable from
// below.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

// CreateFloatingPlatform spawns a one-way platform that drifts up by travel
// pixels and back on a tween loop.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travel float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// A sequence of two tweens moves the platform up and back down; the
	// tween system resets the sequence when it completes.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-travel), 2, ease.Linear),
		gween.New(float32(y-travel), float32(y), 2, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
