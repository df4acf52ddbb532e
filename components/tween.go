package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives scripted motion, currently the vertical path of floating
// platforms. UpdateTweens advances the sequence and writes the value back to
// the entity's object.
var Tween = donburi.NewComponentType[gween.Sequence]()
