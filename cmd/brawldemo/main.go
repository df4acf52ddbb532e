// Command brawldemo runs a single arena with one player, the spawned
// enemies and the debug overlays. It exists to exercise the behavior
// core interactively; tuning values hot-reload when -tuning is given.
package main

import (
	"embed"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/greyfall/brawlcore/config"
	"github.com/greyfall/brawlcore/fonts"
	"github.com/greyfall/brawlcore/leveldata"
	"github.com/greyfall/brawlcore/scenes"
)

//go:embed levels
var levels embed.FS

type Game struct {
	scene  *scenes.WorldScene
	tuning <-chan string
}

func (g *Game) Update() error {
	// Reloads apply between ticks so systems never see a half-written
	// config.
	select {
	case path := <-g.tuning:
		if err := cfg.LoadTuning(path); err != nil {
			log.Printf("tuning reload failed: %v", err)
		} else {
			log.Printf("tuning reloaded from %s", path)
		}
	default:
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.World.Width, cfg.World.Height
}

func main() {
	levelPath := flag.String("level", "", "path to a TMX arena, defaults to the built-in one")
	tuningPath := flag.String("tuning", "", "path to a tuning YAML, hot-reloaded on save")
	debug := flag.Bool("debug", false, "draw collision shapes")
	bot := flag.Bool("bot", false, "drive the player with the scripted controller")
	flag.Parse()

	fonts.LoadFont(fonts.Hud, goregular.TTF)
	fonts.LoadFontWithSize(fonts.HudSmall, goregular.TTF, 10)

	arena, err := loadArena(*levelPath)
	if err != nil {
		log.Fatalf("load arena: %v", err)
	}

	game := &Game{scene: scenes.NewWorldScene(arena, *debug, *bot)}

	if *tuningPath != "" {
		if err := cfg.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("load tuning: %v", err)
		}
		watcher, err := cfg.WatchTuning(*tuningPath)
		if err != nil {
			log.Fatalf("watch tuning: %v", err)
		}
		defer watcher.Close()
		game.tuning = watcher.Events
		go func() {
			for err := range watcher.Errors {
				log.Printf("tuning watcher: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(cfg.World.Width*2, cfg.World.Height*2)
	ebiten.SetWindowTitle("Brawlcore")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadArena(path string) (*leveldata.Arena, error) {
	if path == "" {
		return leveldata.LoadArena(levels, "levels/arena01.tmx")
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return leveldata.LoadArena(os.DirFS(dir), file)
}
