package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton resolv space all collision objects live in.
var Space = donburi.NewComponentType[resolv.Space]()
