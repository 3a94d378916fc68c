package factory

import (
	"github.com/automoto/summit/shared/leveldata"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
	"github.com/solarlune/resolv"
)

// CreateWall adds a solid tile at (tx, ty) to the world's space.
func CreateWall(w *world.World, tx, ty int) *resolv.Object {
	tile := leveldata.Tile{X: tx, Y: ty}
	x, y := tile.Origin()

	obj := resolv.NewObject(x, y, leveldata.TileSize, leveldata.TileSize, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, leveldata.TileSize, leveldata.TileSize))
	obj.Data = tile

	if w.Space != nil {
		w.Space.Add(obj)
	}
	return obj
}
