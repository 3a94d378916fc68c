package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

func runState(w *world.World) *components.RunData {
	return components.Run.Get(components.Run.MustFirst(w.ECS))
}

// Run returns the run bookkeeping.
func Run(w *world.World) components.RunData {
	return *runState(w)
}

// UpdateRunClock advances the run timer until the run is won.
func UpdateRunClock(w *world.World, dt float64) {
	run := runState(w)
	if !run.Won {
		run.Elapsed += dt
	}
}

// RestartRun resets the run to its initial state: clock, counters, pickups,
// checkpoints, particles and the player at the level spawn.
func RestartRun(w *world.World) {
	run := runState(w)
	*run = components.RunData{
		ActiveCheckpoint: components.NoCheckpoint,
		RespawnTile:      w.Level.Spawn,
	}

	ClearParticles(w)
	tags.Berry.Each(w.ECS, func(e *donburi.Entry) {
		components.Berry.Get(e).Collected = false
	})
	ResetCrystals(w)
	ClearCheckpoints(w)

	SpawnPlayerAtTile(w, run.RespawnTile)
	ShowMessage(w, cfg.Run.ResetMessage, cfg.Run.ResetMessageFor)

	if entry, ok := components.ScreenShake.First(w.ECS); ok {
		components.ScreenShake.Get(entry).Intensity = 0
	}
	SnapCamera(w)

	x, y := w.Level.Spawn.Origin()
	publish(w, EventRestarted, x, y)
	w.Logger.Debug("run restarted")
}
