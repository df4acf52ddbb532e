package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	assert.Equal(t, 2.0, ApplyFriction(5, 3))
	assert.Equal(t, -2.0, ApplyFriction(-5, 3))

	// Friction never overshoots past zero.
	assert.Equal(t, 0.0, ApplyFriction(2, 3))
	assert.Equal(t, 0.0, ApplyFriction(-2, 3))
	assert.Equal(t, 0.0, ApplyFriction(0, 3))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 4.0, ClampSpeed(9, 4))
	assert.Equal(t, -4.0, ClampSpeed(-9, 4))
	assert.Equal(t, 3.0, ClampSpeed(3, 4))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(7))
	assert.Equal(t, -1.0, Sign(-0.25))
	assert.Equal(t, 1.0, Sign(0))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 1.5, Abs(-1.5))
	assert.Equal(t, 1.5, Abs(1.5))
}
