// internal/ui/hud.go
package ui

import (
	"fmt"

	"alien-invasion/internal/config"
	"alien-invasion/internal/stats"
	"alien-invasion/pkg/geom"
	"alien-invasion/pkg/render"
)

// HUD — строка состояния: очки, пик сессии и рекорд сверху справа,
// уровень под ними, оставшиеся корабли иконками слева.
type HUD struct {
	settings *config.Settings
	padding  float64
	iconSize float64
}

func NewHUD(settings *config.Settings) *HUD {
	return &HUD{
		settings: settings,
		padding:  config.HUDPadding,
		iconSize: float64(settings.ShipW) / 2,
	}
}

// Lines возвращает строки HUD в порядке отрисовки.
func (h *HUD) Lines(gs *stats.GameStats) []string {
	return []string{
		fmt.Sprintf("Score: %s", formatScore(gs.Score)),
		fmt.Sprintf("Max: %s", formatScore(gs.MaxScore)),
		fmt.Sprintf("Hi-Score: %s", formatScore(gs.HiScore)),
		fmt.Sprintf("Level: %d", gs.Level),
	}
}

func (h *HUD) Draw(s render.Surface, gs *stats.GameStats) {
	w, _ := s.Size()
	y := h.padding
	for _, line := range h.Lines(gs) {
		tw, th := s.MeasureText(line, render.FontHUD)
		s.DrawText(line, render.FontHUD, float64(w)-tw-h.padding, y, config.TextColor)
		y += th + h.padding/2
	}
	h.drawLives(s, gs.ShipsLeft)
}

func (h *HUD) drawLives(s render.Surface, ships int) {
	for i := 0; i < ships; i++ {
		x := h.padding + float64(i)*(h.iconSize+h.padding/2)
		s.DrawSprite(render.SpriteShip, geom.NewRect(x, h.padding, h.iconSize, h.iconSize))
	}
}

// formatScore разделяет тысячи запятыми.
func formatScore(score int) string {
	s := fmt.Sprintf("%d", score)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
