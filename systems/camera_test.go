package systems

import (
	"testing"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/shared/leveldata"
)

func TestCameraTargetSmallLevel(t *testing.T) {
	w := newTestWorld(t, room)

	x, y := CameraTarget(w)

	if x != 0 || y != 0 {
		t.Errorf("CameraTarget() = (%v, %v), expected (0, 0) for a level smaller than the view", x, y)
	}
}

func TestCameraTargetClampsToLevel(t *testing.T) {
	w := newTestWorld(t, leveldata.SummitGrid())
	p := getPlayer(t, w)
	maxX := w.Level.PixelWidth() - w.ViewWidth
	maxY := w.Level.PixelHeight() - w.ViewHeight

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"top left corner", 20, 20, 0, 0},
		{"bottom right corner", w.Level.PixelWidth() - 30, w.Level.PixelHeight() - 30, maxX, maxY},
		{"middle", 1000, 300, 1006 - w.ViewWidth*cfg.Camera.FramingX, 307 - w.ViewHeight*cfg.Camera.FramingY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.obj.X, p.obj.Y = tt.x, tt.y
			x, y := CameraTarget(w)
			if !approx(x, tt.wantX) || !approx(y, tt.wantY) {
				t.Errorf("CameraTarget() = (%v, %v), expected (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCameraFollowIsFrameRateIndependent(t *testing.T) {
	w := newTestWorld(t, leveldata.SummitGrid())
	p := getPlayer(t, w)
	camera := components.Camera.Get(components.Camera.MustFirst(w.ECS))
	p.obj.X, p.obj.Y = 1000, 300
	tx, _ := CameraTarget(w)

	camera.Position.X = 0
	UpdateCamera(w, 2*testDT)
	once := camera.Position.X

	camera.Position.X = 0
	UpdateCamera(w, testDT)
	UpdateCamera(w, testDT)
	twice := camera.Position.X

	if d := once - twice; d > 1e-6 || d < -1e-6 {
		t.Errorf("one 2dt step %v differs from two dt steps %v", once, twice)
	}
	if want := gamemath.Damp(0, tx, cfg.Camera.FollowX, 2*testDT); !approx(once, want) {
		t.Errorf("Position.X = %v, expected %v", once, want)
	}
}

func TestScreenShakeOnlyRises(t *testing.T) {
	w := newTestWorld(t, room)
	shake := components.ScreenShake.Get(components.ScreenShake.MustFirst(w.ECS))

	TriggerScreenShake(w, 0.5)
	TriggerScreenShake(w, 0.2)
	if shake.Intensity != 0.5 {
		t.Errorf("Intensity = %v, a weaker shake must not lower it", shake.Intensity)
	}

	UpdateCamera(w, 0.1)
	if want := 0.5 - cfg.Camera.ShakeDecay*0.1; !approx(shake.Intensity, want) {
		t.Errorf("Intensity = %v after decay, expected %v", shake.Intensity, want)
	}

	TriggerScreenShake(w, 3)
	if shake.Intensity != 1 {
		t.Errorf("Intensity = %v, expected clamp to 1", shake.Intensity)
	}

	UpdateCamera(w, 10)
	if shake.Intensity != 0 {
		t.Errorf("Intensity = %v, expected decay to stop at 0", shake.Intensity)
	}
}
