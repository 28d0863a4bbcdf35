// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"alien-invasion/internal/config"
	"alien-invasion/internal/utils"
	"alien-invasion/pkg/geom"
	"alien-invasion/pkg/render"
)

// pauseButtonSize — радиус кнопки паузы
const pauseButtonSize = 15

// PauseButton — круглая кнопка паузы в левом верхнем углу.
// Две полосы во время игры, «play» во время паузы.
type PauseButton struct {
	X, Y       float64
	Size       float64
	IsPaused   bool
	PauseColor color.Color
	PlayColor  color.Color

	sinceToggle float64
}

func NewPauseButton() *PauseButton {
	return &PauseButton{
		X:           config.HUDPadding + pauseButtonSize,
		Y:           config.HUDPadding + pauseButtonSize,
		Size:        pauseButtonSize,
		PauseColor:  config.ButtonColor,
		PlayColor:   config.AlienColor,
		sinceToggle: -1,
	}
}

// IsClicked — попадает ли точка в круг кнопки.
func (b *PauseButton) IsClicked(x, y float64) bool {
	return math.Hypot(x-b.X, y-b.Y) <= b.Size
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.sinceToggle = 0
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.TogglePause()
	}
}

func (b *PauseButton) Update(dt float64) {
	if b.sinceToggle >= 0 {
		b.sinceToggle += dt
	}
}

func (b *PauseButton) Draw(s render.Surface) {
	size := b.Size * utils.Pulse(b.sinceToggle, 0.3, 8)

	if b.IsPaused {
		// Треугольник ступеньками: поверхность умеет только прямоугольники
		const steps = 4
		stepW := 2 * size / steps
		for i := 0; i < steps; i++ {
			h := 2.4 * size * float64(steps-i) / steps
			s.FillRect(geom.NewRect(b.X-size+float64(i)*stepW, b.Y-h/2, stepW, h), b.PlayColor)
		}
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	s.FillRect(geom.NewRect(b.X-width-spacing/2, b.Y-height/2, width, height), b.PauseColor)
	s.FillRect(geom.NewRect(b.X+spacing/2, b.Y-height/2, width, height), b.PauseColor)
}
