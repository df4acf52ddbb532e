// Package scenes assembles worlds: the ECS, its system chain and the
// entities loaded from arena data.
package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/leveldata"
	"github.com/greyfall/brawlcore/systems"
	"github.com/greyfall/brawlcore/systems/factory"
)

// WorldScene hosts one arena: terrain and agents built from level data,
// stepped by the full system chain on every Update.
type WorldScene struct {
	ecs   *ecs.ECS
	arena *leveldata.Arena
	debug bool
	bot   bool
	once  sync.Once
}

// NewWorldScene builds a scene around arena. With debug set, collision
// shapes render on top of the world. With bot set, the first player is
// driven by the scripted controller instead of the keyboard.
func NewWorldScene(arena *leveldata.Arena, debug, bot bool) *WorldScene {
	return &WorldScene{
		arena: arena,
		debug: debug,
		bot:   bot,
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// ECS exposes the configured world for hosts that inspect or drive
// entities directly.
func (ws *WorldScene) ECS() *ecs.ECS {
	ws.once.Do(ws.configure)
	return ws.ecs
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.ReadInput)
	e.AddSystem(systems.UpdateBots)
	e.AddSystem(systems.UpdatePlayers)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateStates)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateCombatHitboxes)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawAgents)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	if ws.debug {
		e.AddRenderer(cfg.Default, systems.DrawDebug)
	}

	ws.ecs = e

	factory.CreateClock(e, cfg.World.FixedDT)
	factory.CreateSpace(e, ws.arena.Width, ws.arena.Height, cfg.World.CellSize, cfg.World.CellSize)
	factory.CreateCamera(e, float64(ws.arena.Width), float64(ws.arena.Height))

	for _, r := range ws.arena.Walls {
		factory.CreateWall(e, r.X, r.Y, r.W, r.H)
	}
	for _, r := range ws.arena.Platforms {
		factory.CreatePlatform(e, r.X, r.Y, r.W, r.H)
	}
	for _, fp := range ws.arena.FloatingPlatforms {
		factory.CreateFloatingPlatform(e, fp.X, fp.Y, fp.W, fp.H, fp.Travel)
	}

	for i, s := range ws.arena.PlayerSpawns {
		player := factory.CreatePlayer(e, s.X, s.Y)
		if ws.bot && i == 0 {
			donburi.Add(player, components.Bot, &components.BotData{})
		}
	}
	for _, s := range ws.arena.EnemySpawns {
		factory.CreateEnemy(e, s.X, s.Y, s.Kind)
	}
}
