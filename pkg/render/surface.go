// pkg/render/surface.go
package render

import (
	"image/color"

	"alien-invasion/pkg/geom"
)

// SpriteID — изображение, которое поверхность знает, как нарисовать.
// Игровая логика не владеет пикселями: она называет спрайт и прямоугольник.
type SpriteID int

const (
	SpriteBackground SpriteID = iota
	SpriteShip
	SpriteAlien
	SpriteBullet
)

// FontID — размер/гарнитура текста
type FontID int

const (
	FontHUD FontID = iota
	FontButton
)

// Surface — всё, что ядро игры требует от графической библиотеки.
type Surface interface {
	// Size возвращает логический размер экрана в пикселях.
	Size() (width, height int)
	Clear(clr color.Color)
	FillRect(r geom.Rect, clr color.Color)
	// DrawSprite рисует спрайт, растянутый на r.
	DrawSprite(id SpriteID, r geom.Rect)
	// DrawText рисует строку; (x, y) — левый верхний угол текста.
	DrawText(str string, font FontID, x, y float64, clr color.Color)
	MeasureText(str string, font FontID) (width, height float64)
}

// Drawable — всё, что умеет нарисовать себя на поверхности.
type Drawable interface {
	Draw(s Surface)
}
