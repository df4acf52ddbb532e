package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	"github.com/greyfall/brawlcore/tags"
)

// DrawDebug outlines every collision object in the space, color-coded by
// tag. The demo registers it only when launched with -debug.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	camX, camY := cameraOffset(ecs, screen)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvHitbox):
			c = color.RGBA{255, 255, 0, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvPlatform):
			c = color.RGBA{180, 160, 90, 255}
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false)
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false)
	}
}
