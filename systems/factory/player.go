package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer creates the player at (x, y). The body is not added to the
// collision space; movement resolves against tiles directly.
func CreatePlayer(w *world.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w.ECS)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Facing:  cfg.DirectionRight,
		Dashes:  cfg.Physics.MaxDashes,
		DashDir: math.Vec2{X: 1, Y: 0},
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	return player
}
