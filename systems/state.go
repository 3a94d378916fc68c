package systems

import (
	"github.com/automoto/summit/world"
)

// PlayerState is a display label derived from the player's flags. The
// flags remain the source of truth.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateRunning
	StateJumping
	StateFalling
	StateWallSliding
	StateDashing
	StateDead
)

func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "run"
	case StateJumping:
		return "jump"
	case StateFalling:
		return "fall"
	case StateWallSliding:
		return "wall_slide"
	case StateDashing:
		return "dash"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// runThreshold is the horizontal speed below which a grounded player reads
// as standing still.
const runThreshold = 1.0

// CurrentPlayerState derives the player's state, most urgent first.
func CurrentPlayerState(w *world.World) PlayerState {
	_, player, physics, _, ok := playerParts(w)
	switch {
	case !ok || player.Dead:
		return StateDead
	case player.Dashing():
		return StateDashing
	case physics.WallSliding:
		return StateWallSliding
	case !physics.OnGround && physics.SpeedY < 0:
		return StateJumping
	case !physics.OnGround:
		return StateFalling
	case physics.SpeedX > runThreshold || physics.SpeedX < -runThreshold:
		return StateRunning
	}
	return StateIdle
}
