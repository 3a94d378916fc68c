package components

import (
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/yohamta/donburi"
)

// HazardData is a spike. Hazards never change after creation.
type HazardData struct {
	Spike leveldata.Spike
	Rect  gamemath.Rect
}

var Hazard = donburi.NewComponentType[HazardData]()
