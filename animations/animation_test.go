package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const step = 1.0 / 60.0

func advance(a *Animation, seconds float64) {
	for t := 0.0; t < seconds; t += step {
		a.Update(step)
	}
}

func TestLoopingClipWraps(t *testing.T) {
	a := New(4, 8, true)

	// 1/8s per frame: just past 0.5s the clip has advanced four frames
	// and wrapped back to 0.
	advance(a, 0.51)
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Finished)

	advance(a, 0.26)
	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Finished)
}

func TestOneShotClipFreezesAndFinishes(t *testing.T) {
	a := New(3, 10, false)

	advance(a, 0.16)
	assert.Equal(t, 1, a.Frame())
	assert.False(t, a.Finished)

	advance(a, 0.2)
	assert.True(t, a.Finished)
	assert.Equal(t, 2, a.Frame())

	// Finished clips hold their last frame.
	advance(a, 1.0)
	assert.True(t, a.Finished)
	assert.Equal(t, 2, a.Frame())
}

func TestRestartClearsFinished(t *testing.T) {
	a := New(2, 10, false)
	advance(a, 0.5)
	assert.True(t, a.Finished)

	a.Restart()
	assert.False(t, a.Finished)
	assert.Equal(t, 0, a.Frame())

	advance(a, 0.5)
	assert.True(t, a.Finished)
}

func TestZeroRateClipNeverAdvances(t *testing.T) {
	a := New(4, 0, false)
	advance(a, 2.0)
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Finished)
}
