package systems

import (
	"math"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/world"
)

// UpdateCamera eases the camera toward its target and decays shake.
func UpdateCamera(w *world.World, dt float64) {
	entry := components.Camera.MustFirst(w.ECS)
	camera := components.Camera.Get(entry)

	tx, ty := CameraTarget(w)
	camera.Position.X = gamemath.Damp(camera.Position.X, tx, cfg.Camera.FollowX, dt)
	camera.Position.Y = gamemath.Damp(camera.Position.Y, ty, cfg.Camera.FollowY, dt)

	shake := components.ScreenShake.Get(entry)
	shake.Intensity = math.Max(0, shake.Intensity-cfg.Camera.ShakeDecay*dt)
}

// CameraTarget frames the player center inside the view and clamps the view
// to the level. Levels smaller than the view pin the camera at the origin.
func CameraTarget(w *world.World) (float64, float64) {
	camera := components.Camera.Get(components.Camera.MustFirst(w.ECS))
	_, _, _, obj, ok := playerParts(w)
	if !ok {
		return camera.Position.X, camera.Position.Y
	}
	cx, cy := obj.Center()

	maxX := math.Max(0, w.Level.PixelWidth()-w.ViewWidth)
	maxY := math.Max(0, w.Level.PixelHeight()-w.ViewHeight)
	x := gamemath.Clamp(cx-w.ViewWidth*cfg.Camera.FramingX, 0, maxX)
	y := gamemath.Clamp(cy-w.ViewHeight*cfg.Camera.FramingY, 0, maxY)
	return x, y
}

// SnapCamera moves the camera straight to its target.
func SnapCamera(w *world.World) {
	camera := components.Camera.Get(components.Camera.MustFirst(w.ECS))
	camera.Position.X, camera.Position.Y = CameraTarget(w)
}

// TriggerScreenShake raises the shake intensity to at least intensity.
// Shake is never lowered here.
func TriggerScreenShake(w *world.World, intensity float64) {
	entry, ok := components.ScreenShake.First(w.ECS)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	shake.Intensity = gamemath.Clamp(math.Max(shake.Intensity, intensity), 0, 1)
}
