package components

import "github.com/yohamta/donburi"

// BotData drives a scripted player for the demo. The bot writes the same
// InputData a keyboard would, so the behavior core can't tell them apart.
type BotData struct {
	// DecisionTimer throttles how often the bot reconsiders what it
	// wants. Button intents pulse for one tick when it fires.
	DecisionTimer float64
}

var Bot = donburi.NewComponentType[BotData]()
