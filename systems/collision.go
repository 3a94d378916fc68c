package systems

import (
	"math"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
)

// IsSolidTile reports whether tile (tx, ty) blocks movement. Anything outside
// the collision space is solid.
func IsSolidTile(w *world.World, tx, ty int) bool {
	cell := w.Space.Cell(tx, ty)
	if cell == nil {
		return true
	}
	return cell.ContainsTags(tags.ResolvSolid)
}

// IsSolidPixel reports whether the tile under pixel (px, py) is solid.
func IsSolidPixel(w *world.World, px, py float64) bool {
	tx, ty := w.Space.WorldToSpace(px, py)
	return IsSolidTile(w, tx, ty)
}

func tileIndex(p float64) int {
	return int(math.Floor(p / leveldata.TileSize))
}

// MoveAndCollide integrates velocity one axis at a time, horizontal first,
// and snaps the body out of any solid tile it moved into on that axis. Each
// sweep only scans the tiles covered by the body's extent on the other axis,
// inset by one pixel. Afterwards the wall contact flags are also set by
// point samples one pixel outside each side, so a body flush against a wall
// registers the wall with zero horizontal speed. It reports whether either
// axis hit a tile.
func MoveAndCollide(w *world.World, obj *components.ObjectData, physics *components.PhysicsData, dt float64) bool {
	const ts = float64(leveldata.TileSize)
	eps := cfg.Physics.SnapEpsilon
	collided := false

	physics.TouchingLeft = false
	physics.TouchingRight = false
	physics.OnGround = false

	dx := physics.SpeedX * dt
	obj.X += dx
	if dx != 0 {
		tx := tileIndex(obj.X)
		if dx > 0 {
			tx = tileIndex(obj.X + obj.W)
		}
		for ty := tileIndex(obj.Y + 1); ty <= tileIndex(obj.Y+obj.H-1); ty++ {
			if !IsSolidTile(w, tx, ty) {
				continue
			}
			if dx > 0 {
				obj.X = float64(tx)*ts - obj.W - eps
				physics.TouchingRight = true
			} else {
				obj.X = float64(tx+1)*ts + eps
				physics.TouchingLeft = true
			}
			physics.SpeedX = 0
			collided = true
			break
		}
	}

	dy := physics.SpeedY * dt
	obj.Y += dy
	if dy != 0 {
		ty := tileIndex(obj.Y)
		if dy > 0 {
			ty = tileIndex(obj.Y + obj.H)
		}
		for tx := tileIndex(obj.X + 1); tx <= tileIndex(obj.X+obj.W-1); tx++ {
			if !IsSolidTile(w, tx, ty) {
				continue
			}
			if dy > 0 {
				obj.Y = float64(ty)*ts - obj.H - eps
				physics.OnGround = true
			} else {
				obj.Y = float64(ty+1)*ts + eps
			}
			physics.SpeedY = 0
			collided = true
			break
		}
	}

	top, mid, bottom := obj.Y+2, obj.Y+obj.H/2, obj.Y+obj.H-2
	left, right := obj.X-1, obj.X+obj.W+1
	physics.TouchingLeft = physics.TouchingLeft ||
		IsSolidPixel(w, left, top) ||
		IsSolidPixel(w, left, mid) ||
		IsSolidPixel(w, left, bottom)
	physics.TouchingRight = physics.TouchingRight ||
		IsSolidPixel(w, right, top) ||
		IsSolidPixel(w, right, mid) ||
		IsSolidPixel(w, right, bottom)

	return collided
}
