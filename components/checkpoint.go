package components

import (
	"github.com/automoto/summit/shared/leveldata"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	ID     int
	Tile   leveldata.Tile // respawn anchor
	X, Y   float64        // top-left corner of the tile
	Active bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
