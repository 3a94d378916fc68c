package render

import (
	"image/color"
	"math"

	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/game"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const ts = leveldata.TileSize

// mountain is one parallax ridge of the background.
type mountain struct {
	parallax  float64
	baseY     float64 // fraction of the view height
	amplitude float64
}

var mountains = [3]mountain{
	{parallax: 0.22, baseY: 0.72, amplitude: 34},
	{parallax: 0.34, baseY: 0.81, amplitude: 44},
	{parallax: 0.5, baseY: 0.93, amplitude: 52},
}

func (r *Renderer) drawBackground(screen *ebiten.Image, v *game.View) {
	w, h := float32(v.ViewWidth), float32(v.ViewHeight)
	mid := h * 0.55
	r.gradient(screen, 0, mid, w, cfg.SkyTop, cfg.SkyMiddle)
	r.gradient(screen, mid, h, w, cfg.SkyMiddle, cfg.SkyBottom)

	vector.DrawFilledCircle(screen, w*0.17, h*0.2, 52, cfg.Sun, true)

	for i, m := range mountains {
		offset := v.CameraX * m.parallax
		baseY := float64(h) * m.baseY
		prevX := -80.0
		prevY := baseY + math.Sin((prevX+offset)*0.012)*m.amplitude
		for x := prevX + 40; x <= float64(w)+80; x += 40 {
			y := baseY + math.Sin((x+offset)*0.012)*m.amplitude
			r.fillPolygon(screen, cfg.Mountains[i],
				float32(prevX), float32(prevY),
				float32(x), float32(y),
				float32(x), h,
				float32(prevX), h,
			)
			prevX, prevY = x, y
		}
	}
}

// gradient fills the band [y0, y1) with a vertical blend from top to bottom.
func (r *Renderer) gradient(dst *ebiten.Image, y0, y1, w float32, top, bottom color.Color) {
	tr, tg, tb, ta := straight(top)
	br, bg, bb, ba := straight(bottom)
	vs := []ebiten.Vertex{
		{DstX: 0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		{DstX: w, DstY: y0, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		{DstX: w, DstY: y1, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
		{DstX: 0, DstY: y1, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, r.pixel, &ebiten.DrawTrianglesOptions{})
}

// drawTiles draws the solid tiles in view plus a one tile margin.
func (r *Renderer) drawTiles(screen *ebiten.Image, v *game.View, cam camera) {
	lvl := v.Level
	x0 := max(0, int(math.Floor(v.CameraX/ts))-1)
	x1 := min(lvl.Width-1, int(math.Ceil((v.CameraX+v.ViewWidth)/ts))+1)
	y0 := max(0, int(math.Floor(v.CameraY/ts))-1)
	y1 := min(lvl.Height-1, int(math.Ceil((v.CameraY+v.ViewHeight)/ts))+1)

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if lvl.Cell(tx, ty) != leveldata.CellSolid {
				continue
			}
			x, y := cam.point(float64(tx*ts), float64(ty*ts))
			vector.DrawFilledRect(screen, x, y, ts, ts, cfg.Rock, false)
			vector.DrawFilledRect(screen, x, y, ts, 4, cfg.RockEdge, false)
		}
	}
}

func (r *Renderer) drawSpikes(screen *ebiten.Image, v *game.View, cam camera) {
	for _, s := range v.Spikes {
		ox, oy := s.Tile.Origin()
		x, y := cam.point(ox, oy)
		const t, half = float32(ts), float32(ts) / 2

		switch s.Orientation {
		case leveldata.Up:
			r.fillPolygon(screen, cfg.SpikeColor, x, y+t, x+half, y, x+t, y+t)
		case leveldata.Down:
			r.fillPolygon(screen, cfg.SpikeColor, x, y, x+half, y+t, x+t, y)
		case leveldata.Left:
			r.fillPolygon(screen, cfg.SpikeColor, x+t, y, x, y+half, x+t, y+t)
		case leveldata.Right:
			r.fillPolygon(screen, cfg.SpikeColor, x, y, x+t, y+half, x, y+t)
		}
	}
}

func (r *Renderer) drawGoal(screen *ebiten.Image, v *game.View, cam camera) {
	g := v.Goal
	wave := float32(math.Sin(v.HUD.Elapsed*3.6) * 1.8)
	x, y := cam.point(g.X, g.Y)
	w, h := float32(g.W), float32(g.H)

	vector.DrawFilledRect(screen, x, y, w, h, cfg.GoalFrame, false)
	vector.DrawFilledRect(screen, x+2, y+2, w-4, h-4, cfg.GoalGold, false)
	vector.DrawFilledRect(screen, x+2, y+2+wave, w-4, 3, cfg.GoalShine, false)
}

func (r *Renderer) drawBerries(screen *ebiten.Image, v *game.View, cam camera) {
	for _, b := range v.Berries {
		if b.Collected {
			continue
		}
		bob := math.Sin(v.HUD.Elapsed*4+b.Phase) * 1.8
		x, y := cam.point(b.X, b.Y+bob)
		vector.DrawFilledCircle(screen, x, y, 5.2, cfg.BerryRed, true)
		vector.DrawFilledCircle(screen, x-1.8, y-1.5, 1.4, cfg.BerryShine, true)
	}
}

func (r *Renderer) drawCrystals(screen *ebiten.Image, v *game.View, cam camera) {
	for i, c := range v.Crystals {
		var clr color.Color = cfg.CrystalUsed
		if !c.Used {
			pulse := 0.75 + math.Sin(v.HUD.Elapsed*5+float64(i))*0.15
			clr = withAlpha(cfg.CrystalCyan, pulse)
		}
		x, y := cam.point(c.X, c.Y)
		r.fillPolygon(screen, clr, x, y-8, x+7, y, x, y+8, x-7, y)
	}
}

func (r *Renderer) drawCheckpoints(screen *ebiten.Image, v *game.View, cam camera) {
	for _, c := range v.Checkpoints {
		pole, flag := cfg.PoleIdle, cfg.FlagIdle
		if c.Active {
			pole, flag = cfg.PoleActive, cfg.FlagActive
		}
		x, y := cam.point(c.X, c.Y)
		vector.DrawFilledRect(screen, x+7, y+2, 2, 12, pole, false)
		r.fillPolygon(screen, flag, x+9, y+2, x+15, y+5, x+9, y+8)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, v *game.View, cam camera) {
	p := v.Player
	if p.Dead {
		return
	}
	x, y := cam.point(p.Rect.X, p.Rect.Y)
	w, h := float32(p.Rect.W), float32(p.Rect.H)

	body, squish := cfg.PlayerBody, float32(1)
	if p.Dashing {
		body, squish = cfg.PlayerDash, 1.25
	}
	vector.DrawFilledRect(screen, x+2-(squish-1)*2, y+2, w-4+(squish-1)*4, h-4, body, false)

	hairX, eyeX := x+1, x+w-5
	if p.Facing < 0 {
		hairX, eyeX = x+w-4, x+3
	}
	vector.DrawFilledRect(screen, hairX, y+5, 3, 7, cfg.PlayerHair, false)
	vector.DrawFilledRect(screen, eyeX, y+6, 1, 1, cfg.PlayerEye, false)
}

func (r *Renderer) drawParticles(screen *ebiten.Image, v *game.View, cam camera) {
	for _, p := range v.Particles {
		x, y := cam.point(p.X, p.Y)
		size := float32(p.Size)
		vector.DrawFilledRect(screen, x, y, size, size, withAlpha(p.Color, p.Alpha), false)
	}
}
