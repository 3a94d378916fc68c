package components

import (
	"github.com/automoto/summit/shared/gamemath"
	"github.com/yohamta/donburi"
)

type GoalData struct {
	Rect gamemath.Rect
}

var Goal = donburi.NewComponentType[GoalData]()
