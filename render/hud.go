package render

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/fonts"
	"github.com/automoto/summit/game"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDLine formats the run counters the way the HUD shows them.
func HUDLine(h game.HUD) string {
	return fmt.Sprintf("Berries %d/%d   Dashes %d   Deaths %d   %s",
		h.Collected, h.Total, h.Dashes, h.Deaths, gamemath.FormatTime(h.Time))
}

func (r *Renderer) drawHUD(screen *ebiten.Image, v *game.View) {
	face := fonts.HUD.Get()
	line := HUDLine(v.HUD)
	bounds := text.BoundString(face, line)

	vector.DrawFilledRect(screen, 6, 6, float32(bounds.Dx()+16), float32(bounds.Dy()+10), cfg.HUDPanel, false)
	text.Draw(screen, line, face, 14, 11-bounds.Min.Y, cfg.HUDText)
}

// drawOverlay shows the win summary or the status message centered in a
// translucent box.
func (r *Renderer) drawOverlay(screen *ebiten.Image, v *game.View) {
	if v.Overlay == "" || r.overlayAlpha <= 0 {
		return
	}
	face := fonts.Overlay.Get()
	lineHeight := face.Metrics().Height.Ceil()
	lines := strings.Split(v.Overlay, "\n")

	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	height := lineHeight * len(lines)

	alpha := float64(r.overlayAlpha)
	boxW, boxH := float32(width+32), float32(height+24)
	boxX := (float32(v.ViewWidth) - boxW) / 2
	boxY := (float32(v.ViewHeight) - boxH) / 2
	vector.DrawFilledRect(screen, boxX, boxY, boxW, boxH, withAlpha(cfg.BlackOverlay, alpha), false)

	y := int(boxY) + 12 + face.Metrics().Ascent.Ceil()
	for _, l := range lines {
		x := (int(v.ViewWidth) - text.BoundString(face, l).Dx()) / 2
		text.Draw(screen, l, face, x, y, withAlpha(cfg.HUDText, alpha))
		y += lineHeight
	}
}
