package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names the loader understands.
const (
	terrainLayer   = "terrain"
	platformsLayer = "platforms"
	spawnsGroup    = "spawns"
	floatersGroup  = "floaters"
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	tileW := float64(arenaMap.TileWidth)
	tileH := float64(arenaMap.TileHeight)
	for _, layer := range arenaMap.Layers {
		switch layer.Name {
		case terrainLayer:
			arena.Walls = tileRects(layer, arenaMap.Width, arenaMap.Height, tileW, tileH)
		case platformsLayer:
			arena.Platforms = tileRects(layer, arenaMap.Width, arenaMap.Height, tileW, tileH)
		}
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case spawnsGroup:
			for _, o := range og.Objects {
				switch o.Name {
				case "player":
					arena.PlayerSpawns = append(arena.PlayerSpawns, SpawnPoint{X: o.X, Y: o.Y})
				case "enemy":
					arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
						X:    o.X,
						Y:    o.Y,
						Kind: o.Properties.GetString("kind"),
					})
				}
			}
		case floatersGroup:
			for _, o := range og.Objects {
				arena.FloatingPlatforms = append(arena.FloatingPlatforms, FloatingPlatform{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Travel: o.Properties.GetFloat("travel"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment.
	sort.Slice(arena.PlayerSpawns, func(i, j int) bool {
		return arena.PlayerSpawns[i].X < arena.PlayerSpawns[j].X
	})

	return arena, nil
}

// tileRects converts every occupied tile of a layer into a pixel rect.
func tileRects(layer *tiled.Layer, mapW, mapH int, tileW, tileH float64) []Rect {
	var rects []Rect
	for y := 0; y < mapH; y++ {
		for x := 0; x < mapW; x++ {
			tile := layer.Tiles[y*mapW+x]
			if tile.IsNil() {
				continue
			}
			rects = append(rects, Rect{
				X: float64(x) * tileW,
				Y: float64(y) * tileH,
				W: tileW,
				H: tileH,
			})
		}
	}
	return rects
}
