// internal/graphics/surface.go
package graphics

import (
	"image/color"

	"alien-invasion/internal/assets"
	"alien-invasion/internal/config"
	"alien-invasion/pkg/geom"
	"alien-invasion/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// fallbackColors — чем рисовать спрайт, если картинка не загрузилась
var fallbackColors = map[render.SpriteID]color.RGBA{
	render.SpriteBackground: config.BackgroundColor,
	render.SpriteShip:       config.ShipColor,
	render.SpriteAlien:      config.AlienColor,
	render.SpriteBullet:     config.BulletColor,
}

// Surface реализует render.Surface поверх кадра ebiten.
type Surface struct {
	screen *ebiten.Image
	assets *assets.Manager
}

func NewSurface(a *assets.Manager) *Surface {
	return &Surface{assets: a}
}

// Begin привязывает поверхность к кадру, который ebiten передал в Draw.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
}

func (s *Surface) Size() (int, int) {
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear(clr color.Color) {
	s.screen.Fill(clr)
}

func (s *Surface) FillRect(r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// DrawSprite масштабирует картинку под r.
func (s *Surface) DrawSprite(id render.SpriteID, r geom.Rect) {
	img := s.assets.Image(id)
	if img == nil {
		if id == render.SpriteBackground {
			return // фон уже залит в Clear
		}
		s.FillRect(r, fallbackColors[id])
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	s.screen.DrawImage(img, op)
}

// DrawText рисует строку; text.Draw ждёт базовую линию, поэтому y сдвигается на ascent.
func (s *Surface) DrawText(str string, id render.FontID, x, y float64, clr color.Color) {
	face := s.assets.Face(id)
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(s.screen, str, face, int(x), int(y)+ascent, clr)
}

func (s *Surface) MeasureText(str string, id render.FontID) (float64, float64) {
	face := s.assets.Face(id)
	return float64(font.MeasureString(face, str).Ceil()), float64(lineHeight(face))
}

func lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

var _ render.Surface = (*Surface)(nil)
