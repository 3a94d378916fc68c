package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

// UpdateCheckpoints activates a touched checkpoint that is not already the
// run's active one. Activation rescans every checkpoint so at most one is
// ever active.
func UpdateCheckpoints(w *world.World, box gamemath.Rect) {
	run := runState(w)

	var touched []*components.CheckpointData
	tags.Checkpoint.Each(w.ECS, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		if checkpointRect(cp).Overlaps(box) {
			touched = append(touched, cp)
		}
	})

	for _, cp := range touched {
		if cp.ID == run.ActiveCheckpoint {
			continue
		}
		activateCheckpoint(w, run, cp)
	}
}

func activateCheckpoint(w *world.World, run *components.RunData, cp *components.CheckpointData) {
	run.ActiveCheckpoint = cp.ID
	run.RespawnTile = cp.Tile

	tags.Checkpoint.Each(w.ECS, func(e *donburi.Entry) {
		other := components.Checkpoint.Get(e)
		other.Active = other.ID == cp.ID
	})

	ShowMessage(w, cfg.Pickup.CheckpointMessage, cfg.Pickup.CheckpointMsgTime)

	cx, cy := cp.X+cfg.TileSize/2, cp.Y+cfg.TileSize/2
	SpawnBurst(w, cx, cy, cfg.Bursts.Checkpoint)
	GameEvents.Publish(w.ECS, GameEvent{Kind: EventCheckpointActivated, X: cx, Y: cy, ID: cp.ID})
	w.Logger.Debug("checkpoint activated", "id", cp.ID, "tile", cp.Tile)
}

func checkpointRect(cp *components.CheckpointData) gamemath.Rect {
	return gamemath.NewRect(cp.X, cp.Y, cfg.TileSize, cfg.TileSize).Inset(cfg.Pickup.CheckpointInset)
}

// ClearCheckpoints deactivates every checkpoint.
func ClearCheckpoints(w *world.World) {
	tags.Checkpoint.Each(w.ECS, func(e *donburi.Entry) {
		components.Checkpoint.Get(e).Active = false
	})
}
