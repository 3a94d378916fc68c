package factory

import (
	"github.com/automoto/summit/shared/leveldata"
	"github.com/automoto/summit/world"
	"github.com/solarlune/resolv"
)

// CreateSpace builds the collision space for the world's level, one cell per
// tile, and registers every solid tile in it.
func CreateSpace(w *world.World) *resolv.Space {
	lvl := w.Level
	space := resolv.NewSpace(
		lvl.Width*leveldata.TileSize,
		lvl.Height*leveldata.TileSize,
		leveldata.TileSize, leveldata.TileSize,
	)
	w.Space = space

	for ty := 0; ty < lvl.Height; ty++ {
		for tx := 0; tx < lvl.Width; tx++ {
			if lvl.Cell(tx, ty) == leveldata.CellSolid {
				CreateWall(w, tx, ty)
			}
		}
	}
	return space
}
