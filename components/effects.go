package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ScreenShakeData is the camera's shake intensity in [0, 1]. It decays
// linearly and is only raised through max-with-current.
type ScreenShakeData struct {
	Intensity float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// ParticleData is a short-lived visual effect.
type ParticleData struct {
	Position math.Vec2
	Velocity math.Vec2
	Life     float64 // seconds remaining
	MaxLife  float64
	Color    color.RGBA
	Size     float64
}

var Particle = donburi.NewComponentType[ParticleData]()
