package components

import "github.com/yohamta/donburi"

// PhysicsData is a body's velocity and the contact flags the collision
// resolver derived on the last move.
type PhysicsData struct {
	SpeedX        float64
	SpeedY        float64
	OnGround      bool
	TouchingLeft  bool
	TouchingRight bool
	WallSliding   bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
