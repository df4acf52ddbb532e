package components

import "github.com/yohamta/donburi"

// ClockData is the singleton timestep for the current tick, in seconds.
// Hosts that drive the world at a fixed rate set it once; hosts with a
// variable frame time update it every tick before stepping the systems.
type ClockData struct {
	DT float64
}

var Clock = donburi.NewComponentType[ClockData]()
