package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/brawlcore/components"
	"github.com/greyfall/brawlcore/systems/factory"
)

func TestCameraEasesTowardPlayerAndClamps(t *testing.T) {
	e := newTestWorld()
	addFloor(e)
	factory.CreateCamera(e, 1280, 720)
	player := factory.CreatePlayer(e, 100, 290)
	settle(t, e, player)

	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	camera := components.Camera.Get(cameraEntry)
	obj := components.Object.Get(player).Object

	// Near the arena edge the view clamps horizontally; vertically the
	// player center is inside the free band.
	tickN(e, 180)
	assert.InDelta(t, 320.0, camera.Position.X, 1.0)
	assert.InDelta(t, obj.Y+obj.H/2, camera.Position.Y, 1.0)

	// A teleport is chased smoothly, not snapped.
	obj.X = 600
	obj.Update()
	tick(e)
	assert.InDelta(t, 348.8, camera.Position.X, 1.0)

	tickN(e, 180)
	assert.InDelta(t, 608.0, camera.Position.X, 1.0)
}

func TestCameraHoldsWithoutPlayer(t *testing.T) {
	e := newTestWorld()
	factory.CreateCamera(e, 1280, 720)

	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	camera := components.Camera.Get(cameraEntry)

	tickN(e, 10)
	assert.Equal(t, 0.0, camera.Position.X)
	assert.Equal(t, 0.0, camera.Position.Y)
}
