// internal/system/ship.go
package system

import (
	"alien-invasion/internal/component"
	"alien-invasion/internal/config"
	"alien-invasion/internal/entity"
	"alien-invasion/internal/physics"
	"alien-invasion/pkg/geom"
	"alien-invasion/pkg/render"
)

// Ship — корабль игрока: движется по горизонтали у нижнего края и стреляет через свой арсенал.
type Ship struct {
	ID          entity.ID
	Rect        geom.Rect
	MovingLeft  bool
	MovingRight bool
	Arsenal     *Arsenal

	settings *config.Settings
	world    *physics.World
}

func NewShip(settings *config.Settings, registry *entity.Registry, world *physics.World, arsenal *Arsenal) *Ship {
	if arsenal == nil {
		panic("ship: arsenal cannot be nil")
	}
	s := &Ship{
		ID:       registry.NewEntity(),
		Rect:     geom.NewRect(0, 0, float64(settings.ShipW), float64(settings.ShipH)),
		Arsenal:  arsenal,
		settings: settings,
		world:    world,
	}
	s.Rect = s.Rect.WithMidBottom(float64(settings.ScreenW)/2, float64(settings.ScreenH))
	world.Add(s.ID, physics.KindShip, s.Rect)
	return s
}

// CenterShip ставит корабль по центру у нижнего края.
func (s *Ship) CenterShip() {
	s.Rect = s.Rect.WithMidBottom(float64(s.settings.ScreenW)/2, float64(s.settings.ScreenH))
	s.world.Move(s.ID, s.Rect)
}

// Update двигает корабль и его снаряды.
func (s *Ship) Update() {
	s.updateShipMovement()
	s.Arsenal.UpdateArsenal()
}

// updateShipMovement: шаг применяется, только если край корабля после шага
// остаётся в пределах экрана; иначе шаг пропускается целиком.
func (s *Ship) updateShipMovement() {
	speed := s.settings.Dynamic().ShipSpeed
	screenW := float64(s.settings.ScreenW)
	if s.MovingRight && s.Rect.Right()+speed <= screenW {
		s.Rect.X += speed
	}
	if s.MovingLeft && s.Rect.Left()-speed >= 0 {
		s.Rect.X -= speed
	}
	s.world.Move(s.ID, s.Rect)
}

// Fire стреляет из середины верхней грани корабля.
func (s *Ship) Fire() bool {
	return s.Arsenal.FireBullet(s.Rect.CenterX(), s.Rect.Top())
}

// CheckCollisions сообщает о столкновении с пришельцем из aliens.
// При столкновении корабль возвращается в центр.
func (s *Ship) CheckCollisions(aliens *entity.Group[*component.Alien]) bool {
	for _, id := range s.world.Touching(s.ID, physics.KindAlien) {
		if aliens.Has(id) {
			s.CenterShip()
			return true
		}
	}
	return false
}

// Draw рисует снаряды и сам корабль.
func (s *Ship) Draw(surface render.Surface) {
	s.Arsenal.Draw(surface)
	surface.DrawSprite(render.SpriteShip, s.Rect)
}
