package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the demo's follow camera. Position is the world point at the
// screen center. Bounds are the arena's pixel dimensions; zero bounds mean
// unclamped.
type CameraData struct {
	Position     math.Vec2
	BoundsWidth  float64
	BoundsHeight float64
}

var Camera = donburi.NewComponentType[CameraData]()
