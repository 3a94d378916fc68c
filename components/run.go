package components

import (
	"github.com/automoto/summit/shared/leveldata"
	"github.com/yohamta/donburi"
)

// NoCheckpoint is the ActiveCheckpoint value before any checkpoint is touched.
const NoCheckpoint = -1

// RunData is the per-run bookkeeping. It is reset wholesale on restart.
type RunData struct {
	Elapsed          float64
	WinTime          float64
	Won              bool
	Deaths           int
	Collected        int
	ActiveCheckpoint int
	RespawnTile      leveldata.Tile
}

var Run = donburi.NewComponentType[RunData]()
