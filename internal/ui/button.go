// internal/ui/button.go
package ui

import (
	"image/color"

	"alien-invasion/internal/config"
	"alien-invasion/internal/utils"
	"alien-invasion/pkg/geom"
	"alien-invasion/pkg/render"
)

// Button — прямоугольная кнопка с надписью по центру экрана.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Font       render.FontID

	hovered    bool
	sinceClick float64 // секунд с последнего нажатия, <0 — нажатий не было
}

// NewButton создает кнопку размера из настроек по центру экрана.
func NewButton(settings *config.Settings, text string) *Button {
	r := geom.NewRect(0, 0, float64(settings.ButtonW), float64(settings.ButtonH)).
		WithCenter(float64(settings.ScreenW)/2, float64(settings.ScreenH)/2)
	return &Button{
		Rect:       r,
		Text:       text,
		TextColor:  config.TextColor,
		BgColor:    config.ButtonColor,
		HoverColor: render.DarkenColor(config.ButtonColor),
		Font:       render.FontButton,
		sinceClick: -1,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

// Hover запоминает положение курсора для подсветки.
func (b *Button) Hover(x, y float64) {
	b.hovered = b.Contains(x, y)
}

// Press запускает анимацию нажатия.
func (b *Button) Press() {
	b.sinceClick = 0
}

func (b *Button) Update(dt float64) {
	if b.sinceClick >= 0 {
		b.sinceClick += dt
	}
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(s render.Surface) {
	bg := b.BgColor
	if b.hovered {
		bg = b.HoverColor
	}

	r := b.Rect
	if b.sinceClick >= 0 {
		k := utils.Pulse(b.sinceClick, 0.1, 8)
		r = geom.NewRect(0, 0, r.W*k, r.H*k).WithCenter(b.Rect.CenterX(), b.Rect.CenterY())
	}
	s.FillRect(r, bg)

	tw, th := s.MeasureText(b.Text, b.Font)
	s.DrawText(b.Text, b.Font, r.CenterX()-tw/2, r.CenterY()-th/2, b.TextColor)
}
