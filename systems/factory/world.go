package factory

import (
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/world"
)

// Populate fills an empty world: the collision space, every level entity,
// the player standing on the spawn tile, the camera and the run state.
func Populate(w *world.World) {
	CreateSpace(w)
	CreateLevelEntities(w)

	ox, oy := w.Level.Spawn.Origin()
	CreatePlayer(w,
		ox+(cfg.TileSize-cfg.Player.CollisionWidth)/2,
		oy+(cfg.TileSize-cfg.Player.CollisionHeight),
	)
	CreateCamera(w)
	CreateRun(w)
}
