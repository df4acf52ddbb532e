package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/tags"
)

// UpdateCamera eases the follow camera toward the first player, keeping the
// view inside the arena bounds.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry).Object

	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2

	if camera.BoundsWidth > 0 && camera.BoundsHeight > 0 {
		halfW := float64(cfg.World.Width) / 2
		halfH := float64(cfg.World.Height) / 2
		targetX = math.Max(halfW, math.Min(camera.BoundsWidth-halfW, targetX))
		targetY = math.Max(halfH, math.Min(camera.BoundsHeight-halfH, targetY))
	}

	alpha := cfg.Camera.Smoothing * DeltaTime(ecs)
	if alpha > 1 {
		alpha = 1
	}
	camera.Position.X += (targetX - camera.Position.X) * alpha
	camera.Position.Y += (targetY - camera.Position.Y) * alpha
}
