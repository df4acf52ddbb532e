package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"

	"github.com/greyfall/brawlcore/components"
	"github.com/greyfall/brawlcore/systems/factory"
)

func TestActionStateEdges(t *testing.T) {
	var s components.ActionState

	applyActionState(&s, true)
	assert.True(t, s.Pressed)
	assert.True(t, s.JustPressed)
	assert.False(t, s.JustReleased)

	applyActionState(&s, true)
	assert.True(t, s.Pressed)
	assert.False(t, s.JustPressed, "held keys must not re-trigger")

	applyActionState(&s, false)
	assert.False(t, s.Pressed)
	assert.True(t, s.JustReleased)

	applyActionState(&s, false)
	assert.False(t, s.JustReleased)
}

func TestReadInputLeavesBotSnapshotsAlone(t *testing.T) {
	e := newTestWorld()
	keyboard := factory.CreatePlayer(e, 100, 290)
	bot := factory.CreatePlayer(e, 200, 290)
	donburi.Add(bot, components.Bot, &components.BotData{})

	components.Input.Get(keyboard).Axis = 0.7
	components.Input.Get(bot).Axis = 0.7

	ReadInput(e)

	assert.Equal(t, 0.0, components.Input.Get(keyboard).Axis, "keyboard snapshot follows the polled keys")
	assert.Equal(t, 0.7, components.Input.Get(bot).Axis, "bot snapshot belongs to the bot driver")
}
