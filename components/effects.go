package components

import "github.com/yohamta/donburi"

// FlashData tints an agent for a short window after it is struck. The demo
// renderer lightens the agent's color while Timer is positive.
type FlashData struct {
	Timer float64
}

var Flash = donburi.NewComponentType[FlashData]()
