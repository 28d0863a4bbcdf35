// internal/terminal/surface.go
package terminal

import (
	"image/color"
	"math"

	"alien-invasion/pkg/geom"
	"alien-invasion/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// glyphs — символы спрайтов в терминале
var glyphs = map[render.SpriteID]rune{
	render.SpriteShip:   '▲',
	render.SpriteAlien:  '▼',
	render.SpriteBullet: '│',
}

var spriteColors = map[render.SpriteID]tcell.Color{
	render.SpriteShip:   tcell.ColorSteelBlue,
	render.SpriteAlien:  tcell.ColorLimeGreen,
	render.SpriteBullet: tcell.ColorGold,
}

// Surface рисует игру в ячейках терминала. Игра работает в логических
// пикселях; каждый прямоугольник переводится в закрывающие его ячейки.
type Surface struct {
	screen  tcell.Screen
	logical struct{ w, h int }
	bg      tcell.Color
}

func NewSurface(screen tcell.Screen, logicalW, logicalH int) *Surface {
	s := &Surface{screen: screen, bg: tcell.ColorBlack}
	s.logical.w, s.logical.h = logicalW, logicalH
	return s
}

// Size возвращает логический размер, а не размер терминала.
func (s *Surface) Size() (int, int) {
	return s.logical.w, s.logical.h
}

// cellSize — сколько логических пикселей в одной ячейке
func (s *Surface) cellSize() (float64, float64) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 1, 1
	}
	return float64(s.logical.w) / float64(cols), float64(s.logical.h) / float64(rows)
}

// ToCell переводит логическую точку в ячейку.
func (s *Surface) ToCell(x, y float64) (int, int) {
	cw, ch := s.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// FromCell возвращает логический центр ячейки.
func (s *Surface) FromCell(col, row int) (float64, float64) {
	cw, ch := s.cellSize()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

// cells возвращает диапазон ячеек, который закрывает r; минимум одна ячейка.
func (s *Surface) cells(r geom.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = s.ToCell(r.Left(), r.Top())
	cw, ch := s.cellSize()
	x1 = int(math.Ceil(r.Right()/cw)) - 1
	y1 = int(math.Ceil(r.Bottom()/ch)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

func (s *Surface) Clear(clr color.Color) {
	s.bg = toTcell(clr)
	s.screen.SetStyle(tcell.StyleDefault.Background(s.bg))
	s.screen.Clear()
}

// FillRect заливает ячейки. Полупрозрачные заливки (затемнение паузы)
// пропускаются: в ячейке нельзя смешать цвета, а сплошная заливка стёрла бы кадр.
func (s *Surface) FillRect(r geom.Rect, clr color.Color) {
	if render.ToRGBA(clr).A < 255 {
		return
	}
	st := tcell.StyleDefault.Background(toTcell(clr))
	s.fill(r, ' ', st)
}

func (s *Surface) DrawSprite(id render.SpriteID, r geom.Rect) {
	g, ok := glyphs[id]
	if !ok {
		return // фон в терминале — просто цвет очистки
	}
	s.fill(r, g, tcell.StyleDefault.Foreground(spriteColors[id]).Background(s.bg))
}

func (s *Surface) fill(r geom.Rect, ch rune, st tcell.Style) {
	cols, rows := s.screen.Size()
	x0, y0, x1, y1 := s.cells(r)
	for y := max(y0, 0); y <= y1 && y < rows; y++ {
		for x := max(x0, 0); x <= x1 && x < cols; x++ {
			s.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (s *Surface) DrawText(str string, _ render.FontID, x, y float64, clr color.Color) {
	col, row := s.ToCell(x, y)
	st := tcell.StyleDefault.Foreground(toTcell(clr)).Background(s.bg)
	for i, r := range []rune(str) {
		s.screen.SetContent(col+i, row, r, nil, st)
	}
}

// MeasureText — одна ячейка на символ, в логических пикселях.
func (s *Surface) MeasureText(str string, _ render.FontID) (float64, float64) {
	cw, ch := s.cellSize()
	return float64(len([]rune(str))) * cw, ch
}

// Show выводит кадр на экран.
func (s *Surface) Show() {
	s.screen.Show()
}

func toTcell(c color.Color) tcell.Color {
	rgba := render.ToRGBA(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

var _ render.Surface = (*Surface)(nil)
