package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
)

// CheckGoal ends the run when the player box reaches the goal.
func CheckGoal(w *world.World, box gamemath.Rect) {
	entry, ok := tags.Goal.First(w.ECS)
	if !ok {
		return
	}
	if components.Goal.Get(entry).Rect.Overlaps(box) {
		Win(w)
	}
}

// Win records the final time and freezes the player. Calling it on a run
// that is already won does nothing.
func Win(w *world.World) {
	run := runState(w)
	if run.Won {
		return
	}
	run.Won = true
	run.WinTime = run.Elapsed

	if _, _, physics, _, ok := playerParts(w); ok {
		physics.SpeedX = 0
		physics.SpeedY = 0
	}
	TriggerScreenShake(w, cfg.ScreenShake.Win)

	goal := w.Level.Goal
	if entry, ok := tags.Goal.First(w.ECS); ok {
		goal = components.Goal.Get(entry).Rect
	}
	cx, cy := goal.Center()
	SpawnBurst(w, cx, cy, cfg.Bursts.Win)
	publish(w, EventWon, cx, cy)
	w.Logger.Info("summit reached", "time", gamemath.FormatTime(run.WinTime), "deaths", run.Deaths, "berries", run.Collected)
}
