package components

import "github.com/yohamta/donburi"

// BerryData is a collectible. Once collected it stays inert until the run
// restarts.
type BerryData struct {
	X, Y      float64 // center
	Phase     float64
	Collected bool
}

var Berry = donburi.NewComponentType[BerryData]()
