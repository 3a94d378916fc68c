package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerData holds the ability state machine. Grounded, airborne,
// wall-sliding, dashing and dead are independent flags and timers rather
// than one enum, since several of them gate behavior at once.
type PlayerData struct {
	Facing     float64 // -1 or 1
	Coyote     float64 // seconds left to jump after leaving ground
	JumpBuffer float64 // seconds left on a remembered jump press
	DashTimer  float64 // seconds left in the active dash
	Dashes     int
	DashDir    math.Vec2 // unit vector
	Dead       bool
	DeathTimer float64
}

// Dashing reports whether a dash is in progress.
func (p *PlayerData) Dashing() bool {
	return p.DashTimer > 0
}

var Player = donburi.NewComponentType[PlayerData]()
