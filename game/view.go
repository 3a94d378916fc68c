package game

import (
	"fmt"
	"image/color"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/automoto/summit/systems"
	"github.com/automoto/summit/tags"
	"github.com/yohamta/donburi"
)

// View is a snapshot of everything a renderer draws. It shares nothing
// mutable with the game, so renderers can keep or modify it freely.
type View struct {
	Level *leveldata.Level // tile grid, read only

	CameraX, CameraY float64
	Shake            float64 // pixels at full intensity times the current intensity
	ViewWidth        float64
	ViewHeight       float64

	Player      PlayerView
	Spikes      []SpikeView
	Berries     []BerryView
	Crystals    []CrystalView
	Checkpoints []CheckpointView
	Goal        gamemath.Rect
	Particles   []ParticleView

	HUD     HUD
	Overlay string // win summary or status message, empty when hidden
}

type PlayerView struct {
	Rect        gamemath.Rect
	Facing      float64
	Dashes      int
	Dashing     bool
	WallSliding bool
	Dead        bool
	State       systems.PlayerState
}

type SpikeView struct {
	Tile        leveldata.Tile
	Orientation leveldata.Orientation
}

type BerryView struct {
	X, Y      float64
	Phase     float64
	Collected bool
}

type CrystalView struct {
	X, Y float64
	Used bool
}

type CheckpointView struct {
	ID     int
	X, Y   float64
	Active bool
}

type ParticleView struct {
	X, Y  float64
	Size  float64
	Alpha float64 // remaining life fraction
	Color color.RGBA
}

// HUD holds the run counters.
type HUD struct {
	Time      float64
	Collected int
	Total     int
	Deaths    int
	Dashes    int
	Won       bool
	Alive     bool
	Elapsed   float64
}

// View builds a snapshot of the current state.
func (g *Game) View() View {
	w := g.world
	camX, camY, shake := g.Camera()
	v := View{
		Level:      w.Level,
		CameraX:    camX,
		CameraY:    camY,
		Shake:      shake * cfg.Camera.MaxShake,
		ViewWidth:  w.ViewWidth,
		ViewHeight: w.ViewHeight,
		Goal:       w.Level.Goal,
	}

	if e, ok := tags.Player.First(w.ECS); ok {
		p := components.Player.Get(e)
		ph := components.Physics.Get(e)
		v.Player = PlayerView{
			Rect:        components.Object.Get(e).Rect(),
			Facing:      p.Facing,
			Dashes:      p.Dashes,
			Dashing:     p.Dashing(),
			WallSliding: ph.WallSliding,
			Dead:        p.Dead,
			State:       systems.CurrentPlayerState(w),
		}
	}

	tags.Hazard.Each(w.ECS, func(e *donburi.Entry) {
		s := components.Hazard.Get(e).Spike
		v.Spikes = append(v.Spikes, SpikeView{Tile: s.Tile, Orientation: s.Orientation})
	})
	tags.Berry.Each(w.ECS, func(e *donburi.Entry) {
		b := components.Berry.Get(e)
		v.Berries = append(v.Berries, BerryView{X: b.X, Y: b.Y, Phase: b.Phase, Collected: b.Collected})
	})
	tags.Crystal.Each(w.ECS, func(e *donburi.Entry) {
		c := components.Crystal.Get(e)
		v.Crystals = append(v.Crystals, CrystalView{X: c.X, Y: c.Y, Used: c.Used})
	})
	tags.Checkpoint.Each(w.ECS, func(e *donburi.Entry) {
		c := components.Checkpoint.Get(e)
		v.Checkpoints = append(v.Checkpoints, CheckpointView{ID: c.ID, X: c.X, Y: c.Y, Active: c.Active})
	})
	if e, ok := tags.Goal.First(w.ECS); ok {
		v.Goal = components.Goal.Get(e).Rect
	}
	tags.Particle.Each(w.ECS, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		alpha := 0.0
		if p.MaxLife > 0 {
			alpha = gamemath.Clamp(p.Life/p.MaxLife, 0, 1)
		}
		v.Particles = append(v.Particles, ParticleView{
			X: p.Position.X, Y: p.Position.Y, Size: p.Size, Alpha: alpha, Color: p.Color,
		})
	})

	v.HUD = HUD{
		Time:      g.DisplayTime(),
		Collected: g.Collected(),
		Total:     g.TotalCollectibles(),
		Deaths:    g.Deaths(),
		Dashes:    g.Dashes(),
		Won:       g.Won(),
		Alive:     g.Alive(),
		Elapsed:   g.Elapsed(),
	}
	v.Overlay = g.overlay()
	return v
}

func (g *Game) overlay() string {
	if g.Won() {
		return fmt.Sprintf("Summit reached in %s\nBerries: %d/%d\nDeaths: %d\n\nPress R or Enter to run again.",
			gamemath.FormatTime(g.FinalTime()), g.Collected(), g.TotalCollectibles(), g.Deaths())
	}
	if text, ok := g.Message(); ok {
		return text
	}
	return ""
}
