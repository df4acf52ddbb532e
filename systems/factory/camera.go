package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/archetypes"
	"github.com/greyfall/brawlcore/components"
)

// CreateCamera spawns the follow camera, clamped to an arena of the given
// pixel size.
func CreateCamera(ecs *ecs.ECS, boundsWidth, boundsHeight float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		BoundsWidth:  boundsWidth,
		BoundsHeight: boundsHeight,
	})
}
