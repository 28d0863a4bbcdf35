// internal/ui/overlay.go
package ui

import (
	"alien-invasion/internal/config"
	"alien-invasion/pkg/geom"
	"alien-invasion/pkg/render"
)

// DrawOverlay затемняет экран и пишет заголовок с подсказкой по центру.
func DrawOverlay(s render.Surface, title, hint string) {
	w, h := s.Size()
	s.FillRect(geom.NewRect(0, 0, float64(w), float64(h)), config.OverlayColor)

	tw, th := s.MeasureText(title, render.FontButton)
	y := float64(h)/2 - th
	s.DrawText(title, render.FontButton, (float64(w)-tw)/2, y, config.TextColor)

	if hint != "" {
		hw, _ := s.MeasureText(hint, render.FontHUD)
		s.DrawText(hint, render.FontHUD, (float64(w)-hw)/2, y+th+config.HUDPadding, config.TextColor)
	}
}
