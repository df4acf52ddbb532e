package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greyfall/brawlcore/components"
	"github.com/greyfall/brawlcore/systems/factory"
)

func TestFloatingPlatformDriftsAndLoops(t *testing.T) {
	e := newTestWorld()
	platform := factory.CreateFloatingPlatform(e, 200, 240, 48, 8, 40)
	obj := components.Object.Get(platform).Object

	// Halfway up the first leg after one second.
	tickN(e, 60)
	assert.InDelta(t, 220.0, obj.Y, 0.5)

	// Top of the travel at two seconds.
	tickN(e, 60)
	assert.InDelta(t, 200.0, obj.Y, 0.5)

	// Back at rest when the sequence completes, then it loops.
	tickN(e, 120)
	assert.InDelta(t, 240.0, obj.Y, 0.5)
	tickN(e, 60)
	assert.InDelta(t, 220.0, obj.Y, 0.5)
}
