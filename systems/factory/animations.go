package factory

import (
	"github.com/greyfall/brawlcore/animations"
	"github.com/greyfall/brawlcore/components"
	cfg "github.com/greyfall/brawlcore/config"
)

// buildAnimationData assembles a fresh clip table for a character key from
// config.CharacterClips. Each agent gets its own clip instances; clips hold
// playback position and can't be shared.
func buildAnimationData(characterKey string) components.AnimationData {
	defs := cfg.CharacterClips[characterKey]
	clips := make(map[cfg.StateID]*animations.Animation, len(defs))
	for state, def := range defs {
		clips[state] = animations.New(def.Frames, def.FrameRate, def.Loop)
	}
	return components.AnimationData{
		Clips:   clips,
		Current: cfg.StateNone,
	}
}
