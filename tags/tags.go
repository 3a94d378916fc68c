package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Hazard     = donburi.NewTag().SetName("Hazard")
	Berry      = donburi.NewTag().SetName("Berry")
	Crystal    = donburi.NewTag().SetName("Crystal")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Goal       = donburi.NewTag().SetName("Goal")
	Particle   = donburi.NewTag().SetName("Particle")
)

// Resolv tags for tile collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
