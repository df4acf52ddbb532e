package config

// BotConfig tunes the scripted player used by demo and headless runs.
type BotConfig struct {
	// DecisionInterval is how often the bot re-decides, in seconds.
	// Button intents pulse for one tick on that cadence so the input
	// edges fire exactly as a keyboard tap would.
	DecisionInterval float64
	// AttackReach is the horizontal distance at which the bot stops
	// steering and swings instead.
	AttackReach float64
	// DashRange is the distance beyond which a decision may dash to
	// close, with DashChance probability.
	DashRange  float64
	DashChance float64
	// HopHeight is how much higher the target must sit before the bot
	// jumps toward it.
	HopHeight float64
}

var Bot BotConfig

func init() {
	Bot = BotConfig{
		DecisionInterval: 0.35,
		AttackReach:      46,
		DashRange:        140,
		DashChance:       0.35,
		HopHeight:        40,
	}
}
