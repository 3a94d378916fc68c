package scenes

import (
	"image/color"
	"time"

	"github.com/automoto/summit/game"
	"github.com/automoto/summit/render"
	"github.com/automoto/summit/settings"
	"github.com/automoto/summit/sfx"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keys for preferences that live outside the gameplay controls.
const (
	keyToggleShake = ebiten.KeyF1
	keyNextVolume  = ebiten.KeyF2
	keyFullscreen  = ebiten.KeyF11
)

// PlatformerScene runs one game in the window: it feeds device input into
// the game, ticks it with wall clock time and draws the resulting view.
type PlatformerScene struct {
	game     *game.Game
	renderer *render.Renderer
	devices  *Devices
	sounds   *sfx.Player
	store    *settings.Store
	saved    settings.Saved
	logger   *log.Logger

	view    game.View
	last    time.Time
	focused bool
}

func NewPlatformerScene(g *game.Game, store *settings.Store, seed int64, logger *log.Logger) *PlatformerScene {
	saved := store.Load()

	ps := &PlatformerScene{
		game:     g,
		renderer: render.New(seed),
		devices:  NewDevices(),
		sounds:   sfx.NewPlayer(saved.SFXVolume, logger),
		store:    store,
		saved:    saved,
		logger:   logger,
		focused:  true,
	}
	ps.renderer.ShakeEnabled = saved.ScreenShake
	ebiten.SetFullscreen(saved.Fullscreen)

	ps.sounds.Preload()
	g.Subscribe(ps.sounds.OnEvent)
	g.Subscribe(ps.onEvent)
	return ps
}

// Scale is the saved window scale.
func (ps *PlatformerScene) Scale() int { return ps.saved.Scale }

func (ps *PlatformerScene) Update() {
	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !ps.last.IsZero() {
		dt = now.Sub(ps.last).Seconds()
	}
	ps.last = now

	if focused := ebiten.IsFocused(); focused != ps.focused {
		ps.focused = focused
		if !focused {
			ps.devices.Release(ps.game.SetKeyDown)
		}
	}
	if ps.focused {
		ps.devices.Poll(ps.game.SetKeyDown)
	}
	ps.updatePreferences()

	ps.game.Tick(dt, func(v game.View) { ps.view = v })
	ps.renderer.Update(dt, &ps.view)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ps.renderer.Draw(screen, &ps.view)
}

func (ps *PlatformerScene) updatePreferences() {
	changed := false
	if inpututil.IsKeyJustPressed(keyToggleShake) {
		ps.saved.ScreenShake = !ps.saved.ScreenShake
		ps.renderer.ShakeEnabled = ps.saved.ScreenShake
		changed = true
	}
	if inpututil.IsKeyJustPressed(keyNextVolume) {
		ps.saved.NextVolume()
		ps.sounds.SetVolume(ps.saved.SFXVolume)
		changed = true
	}
	if inpututil.IsKeyJustPressed(keyFullscreen) {
		ps.saved.Fullscreen = !ps.saved.Fullscreen
		ebiten.SetFullscreen(ps.saved.Fullscreen)
		changed = true
	}
	if changed {
		ps.save()
	}
}

func (ps *PlatformerScene) onEvent(ev systems.GameEvent) {
	if ev.Kind != systems.EventWon {
		return
	}
	t := ps.game.FinalTime()
	if ps.saved.RecordTime(t) {
		ps.logger.Info("new best time", "time", gamemath.FormatTime(t))
		ps.save()
	}
}

func (ps *PlatformerScene) save() {
	if err := ps.store.Save(ps.saved); err != nil {
		ps.logger.Warn("settings not saved", "err", err)
	}
}
