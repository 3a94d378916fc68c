package systems

import (
	"github.com/automoto/summit/world"
)

// Update advances the simulation one frame. A fresh restart press resets
// the run and skips the rest of the frame. Otherwise the clock and message
// tick, then either the death countdown or the live player and pickups
// update, and finally particles and the camera, which update every frame.
func Update(w *world.World, dt float64) {
	if w.Input.Sample().RestartPressed {
		RestartRun(w)
		return
	}

	UpdateRunClock(w, dt)
	UpdateMessage(w, dt)

	_, player, _, _, ok := playerParts(w)
	switch {
	case ok && player.Dead:
		UpdateDeath(w, dt)
	case !runState(w).Won:
		UpdateCrystals(w, dt)
		UpdatePlayer(w, dt)
	}

	UpdateParticles(w, dt)
	UpdateCamera(w, dt)
}
