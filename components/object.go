package components

import (
	"github.com/automoto/summit/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's bounding box. X, Y is the top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the bounding box as a rectangle.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

// Center returns the bounding box center.
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
