package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

func CreateCamera(w *world.World) *donburi.Entry {
	return archetypes.Camera.Spawn(w.ECS)
}
