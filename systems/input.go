package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
)

// Reusable slice for gamepad IDs to avoid allocations.
var gamepadIDs []ebiten.GamepadID

// ReadInput polls the keyboard and any standard-layout gamepad into every
// keyboard-driven player's input snapshot. Must run before UpdatePlayers.
// Bot-driven agents are skipped; UpdateBots writes their snapshots.
func ReadInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	pressed := [cfg.ActionCount]bool{}
	for action, binding := range cfg.Input.Bindings {
		pressed[action] = actionPressed(binding)
	}
	mergeAnalogAxis(&pressed)

	axis := 0.0
	if pressed[cfg.ActionMoveLeft] {
		axis--
	}
	if pressed[cfg.ActionMoveRight] {
		axis++
	}

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Bot) {
			return
		}
		input := components.Input.Get(e)
		input.Axis = axis
		applyActionState(&input.Jump, pressed[cfg.ActionJump])
		applyActionState(&input.Dash, pressed[cfg.ActionDash])
		applyActionState(&input.Attack, pressed[cfg.ActionAttack])
	})
}

func actionPressed(binding cfg.InputBinding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// mergeAnalogAxis folds the left stick into the directional actions once it
// leaves the deadzone.
func mergeAnalogAxis(pressed *[cfg.ActionCount]bool) {
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -cfg.Input.AnalogDeadzone {
			pressed[cfg.ActionMoveLeft] = true
		}
		if x > cfg.Input.AnalogDeadzone {
			pressed[cfg.ActionMoveRight] = true
		}
	}
}

// applyActionState rolls a fresh pressed sample into an action's edge flags.
func applyActionState(s *components.ActionState, pressed bool) {
	s.JustPressed = pressed && !s.Pressed
	s.JustReleased = !pressed && s.Pressed
	s.Pressed = pressed
}
