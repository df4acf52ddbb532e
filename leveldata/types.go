// Package leveldata parses TMX arenas into pure data. It has no dependencies
// on ebitengine, donburi, or resolv; the factories turn these rects into
// entities.
package leveldata

// Arena holds everything parsed from one TMX arena file.
type Arena struct {
	Width  int // pixels
	Height int

	Walls             []Rect
	Platforms         []Rect
	FloatingPlatforms []FloatingPlatform
	PlayerSpawns      []SpawnPoint
	EnemySpawns       []EnemySpawn
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// FloatingPlatform is a platform that travels vertically from its rect's
// position up by Travel pixels and back.
type FloatingPlatform struct {
	Rect
	Travel float64
}

// SpawnPoint is a player spawn location.
type SpawnPoint struct {
	X, Y float64
}

// EnemySpawn is an enemy spawn location with its type name.
type EnemySpawn struct {
	X, Y float64
	Kind string // key into config.Enemy.Types
}
