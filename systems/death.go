package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/automoto/summit/world"
)

// KillPlayer starts the death countdown. It does nothing if the player is
// already dead or the run is won.
func KillPlayer(w *world.World) {
	_, player, physics, obj, ok := playerParts(w)
	if !ok {
		return
	}
	run := runState(w)
	if run.Won || player.Dead {
		return
	}

	player.Dead = true
	player.DeathTimer = cfg.Run.DeathTime
	player.DashTimer = 0
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.WallSliding = false
	run.Deaths++
	TriggerScreenShake(w, cfg.ScreenShake.Death)

	cx, cy := obj.Center()
	SpawnBurst(w, cx, cy, cfg.Bursts.Death)
	publish(w, EventDeath, cx, cy)
	w.Logger.Debug("player died", "deaths", run.Deaths, "x", obj.X, "y", obj.Y)
}

// UpdateDeath counts down a dead player and respawns them when the timer
// runs out.
func UpdateDeath(w *world.World, dt float64) {
	_, player, _, _, ok := playerParts(w)
	if !ok || !player.Dead {
		return
	}
	player.DeathTimer -= dt
	if player.DeathTimer <= 0 {
		RespawnPlayer(w)
	}
}

// RespawnPlayer puts the player back at the respawn anchor and makes every
// crystal available again.
func RespawnPlayer(w *world.World) {
	run := runState(w)
	SpawnPlayerAtTile(w, run.RespawnTile)
	ResetCrystals(w)

	_, _, _, obj, _ := playerParts(w)
	if obj != nil {
		cx, cy := obj.Center()
		publish(w, EventRespawn, cx, cy)
	}
}

// SpawnPlayerAtTile stands the player on the floor of tile, centered
// horizontally, with movement state and dash charges reset. Facing is kept.
func SpawnPlayerAtTile(w *world.World, tile leveldata.Tile) {
	_, player, physics, obj, ok := playerParts(w)
	if !ok {
		return
	}
	ox, oy := tile.Origin()
	obj.X = ox + (cfg.TileSize-obj.W)/2
	obj.Y = oy + (cfg.TileSize - obj.H)

	*physics = components.PhysicsData{}
	player.Coyote = 0
	player.JumpBuffer = 0
	player.DashTimer = 0
	player.Dashes = cfg.Physics.MaxDashes
	player.Dead = false
	player.DeathTimer = 0
}
