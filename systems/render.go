package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/tags"
)

var backgroundColor = color.RGBA{24, 28, 34, 255}

// stateColors tint agents by what they are doing, which keeps the state
// machines readable without sprite art.
var stateColors = map[cfg.StateID]color.RGBA{
	cfg.Idle:      {148, 164, 188, 255},
	cfg.Run:       {90, 200, 120, 255},
	cfg.Jump:      {90, 180, 230, 255},
	cfg.Fall:      {70, 150, 200, 255},
	cfg.WallSlide: {170, 130, 230, 255},
	cfg.Dash:      {240, 220, 90, 255},
	cfg.Attack:    {240, 150, 60, 255},
	cfg.Hit:       {230, 70, 70, 255},
	cfg.Patrol:    {120, 190, 110, 255},
	cfg.Chase:     {230, 140, 80, 255},
	cfg.Pause:     {150, 150, 150, 255},
	cfg.Charge:    {220, 90, 200, 255},
}

// cameraOffset is the world-to-screen translation for the current camera.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}

// DrawArena paints the terrain.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	camX, camY := cameraOffset(ecs, screen)

	wallColor := color.RGBA{94, 102, 114, 255}
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		drawObjectRect(screen, components.Object.Get(e).Object, camX, camY, wallColor)
	})

	platformColor := color.RGBA{150, 134, 92, 255}
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		drawObjectRect(screen, components.Object.Get(e).Object, camX, camY, platformColor)
	})

	floaterColor := color.RGBA{110, 144, 152, 255}
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		drawObjectRect(screen, components.Object.Get(e).Object, camX, camY, floaterColor)
	})
}

// DrawAgents renders players and enemies as state-tinted rectangles with a
// notch on the facing side.
func DrawAgents(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen)

	components.State.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e).Object
		state := components.State.Get(e)

		clr, ok := stateColors[state.CurrentState]
		if !ok {
			clr = cfg.White
		}
		if e.HasComponent(components.Flash) && components.Flash.Get(e).Timer > 0 {
			clr = lighten(clr, 0.7)
		}
		drawObjectRect(screen, obj, camX, camY, clr)

		// Facing notch at eye height.
		const notch = 3.0
		notchX := obj.X
		if agentFacing(e) >= 0 {
			notchX = obj.X + obj.W - notch
		}
		vector.DrawFilledRect(screen,
			float32(notchX+camX), float32(obj.Y+camY+obj.H*0.25),
			notch, notch, cfg.Black, false)
	})
}

func drawObjectRect(screen *ebiten.Image, obj *resolv.Object, camX, camY float64, clr color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(obj.X+camX), float32(obj.Y+camY),
		float32(obj.W), float32(obj.H),
		clr, false)
}

func agentFacing(e *donburi.Entry) float64 {
	switch {
	case e.HasComponent(components.Player):
		return components.Player.Get(e).Direction.X
	case e.HasComponent(components.Enemy):
		return components.Enemy.Get(e).Direction.X
	}
	return cfg.DirectionRight
}

func lighten(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*k),
		G: uint8(float64(c.G) + (255-float64(c.G))*k),
		B: uint8(float64(c.B) + (255-float64(c.B))*k),
		A: 255,
	}
}
