// Package render draws a game.View with Ebitengine. It reads the view and
// keeps only presentation state of its own: the shake jitter source and
// the overlay fade.
package render

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/summit/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// overlayFadeIn is the overlay fade duration in seconds.
const overlayFadeIn = 0.25

type Renderer struct {
	ShakeEnabled bool

	rand  *rand.Rand
	pixel *ebiten.Image

	overlay      string
	overlayFade  *gween.Tween
	overlayAlpha float32
}

func New(seed int64) *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &Renderer{
		ShakeEnabled: true,
		rand:         rand.New(rand.NewSource(seed)),
		pixel:        img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update advances presentation animation by dt seconds.
func (r *Renderer) Update(dt float64, v *game.View) {
	if v.Overlay != r.overlay {
		r.overlay = v.Overlay
		r.overlayAlpha = 0
		r.overlayFade = gween.New(0, 1, overlayFadeIn, ease.OutQuad)
	}
	if r.overlayFade != nil {
		alpha, done := r.overlayFade.Update(float32(dt))
		r.overlayAlpha = alpha
		if done {
			r.overlayFade = nil
		}
	}
}

// Draw renders v onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, v *game.View) {
	r.drawBackground(screen, v)

	shakeX, shakeY := 0.0, 0.0
	if r.ShakeEnabled && v.Shake > 0 {
		shakeX = (r.rand.Float64()*2 - 1) * v.Shake
		shakeY = (r.rand.Float64()*2 - 1) * v.Shake
	}
	cam := camera{
		x: math.Round(v.CameraX - shakeX),
		y: math.Round(v.CameraY - shakeY),
	}

	r.drawTiles(screen, v, cam)
	r.drawSpikes(screen, v, cam)
	r.drawGoal(screen, v, cam)
	r.drawBerries(screen, v, cam)
	r.drawCrystals(screen, v, cam)
	r.drawCheckpoints(screen, v, cam)
	r.drawPlayer(screen, v, cam)
	r.drawParticles(screen, v, cam)

	r.drawHUD(screen, v)
	r.drawOverlay(screen, v)
}

// camera converts level pixels to screen pixels.
type camera struct {
	x, y float64
}

func (c camera) point(x, y float64) (float32, float32) {
	return float32(x - c.x), float32(y - c.y)
}

// fillPolygon fills a convex polygon given as x, y pairs.
func (r *Renderer) fillPolygon(dst *ebiten.Image, clr color.Color, pts ...float32) {
	n := len(pts) / 2
	if n < 3 {
		return
	}
	cr, cg, cb, ca := straight(clr)

	vs := make([]ebiten.Vertex, n)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX: pts[2*i], DstY: pts[2*i+1],
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	is := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(vs, is, r.pixel, &ebiten.DrawTrianglesOptions{})
}

// straight returns non-premultiplied color components in [0, 1].
func straight(clr color.Color) (float32, float32, float32, float32) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// withAlpha returns clr with its opacity scaled by a.
func withAlpha(clr color.Color, a float64) color.NRGBA {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.A = uint8(math.Round(float64(c.A) * math.Max(0, math.Min(1, a))))
	return c
}
