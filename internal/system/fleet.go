// internal/system/fleet.go
package system

import (
	"alien-invasion/internal/component"
	"alien-invasion/internal/config"
	"alien-invasion/internal/entity"
	"alien-invasion/internal/physics"
	"alien-invasion/pkg/render"
)

// Hit — пришелец и снаряды, которые его уничтожили.
type Hit struct {
	Alien       *component.Alien
	Projectiles []*component.Projectile
}

// AlienFleet управляет флотом пришельцев: раскладкой, движением строем,
// разворотом у края и проверками столкновений.
type AlienFleet struct {
	settings  *config.Settings
	registry  *entity.Registry
	world     *physics.World
	Fleet     *entity.Group[*component.Alien]
	Direction component.Direction
	DropSpeed float64
	capacity  int // сколько пришельцев поставил последний CreateFleet
}

// NewAlienFleet создаёт флот и сразу расставляет пришельцев.
func NewAlienFleet(settings *config.Settings, registry *entity.Registry, world *physics.World) *AlienFleet {
	if settings == nil || registry == nil || world == nil {
		panic("alien fleet: nil dependency")
	}
	d := settings.Dynamic()
	f := &AlienFleet{
		settings:  settings,
		registry:  registry,
		world:     world,
		Fleet:     entity.NewGroup[*component.Alien](),
		Direction: component.DirectionOf(d.FleetDirection),
		DropSpeed: d.FleetDropSpeed,
	}
	f.CreateFleet()
	return f
}

// CreateFleet строит шахматную сетку пришельцев в верхней половине экрана.
func (f *AlienFleet) CreateFleet() {
	s := f.settings
	layout := ComputeLayout(s.AlienW, s.AlienH, s.ScreenW, s.ScreenH)
	for _, cell := range layout.Cells {
		x, y := layout.Position(cell, s.AlienW, s.AlienH)
		f.createAlien(float64(x), float64(y))
	}
	f.capacity = len(layout.Cells)
}

func (f *AlienFleet) createAlien(x, y float64) {
	alien := component.NewAlien(f.registry.NewEntity(), x, y, float64(f.settings.AlienW), float64(f.settings.AlienH))
	f.Fleet.Add(alien)
	f.world.Add(alien.ID, physics.KindAlien, alien.Rect)
}

// Capacity — сколько пришельцев было в строю при последней расстановке.
func (f *AlienFleet) Capacity() int {
	return f.capacity
}

// ResetDirection возвращает направление и шаг снижения к значениям из настроек.
func (f *AlienFleet) ResetDirection() {
	d := f.settings.Dynamic()
	f.Direction = component.DirectionOf(d.FleetDirection)
	f.DropSpeed = d.FleetDropSpeed
}

// UpdateFleet проверяет края и двигает весь флот в текущем направлении.
func (f *AlienFleet) UpdateFleet() {
	f.checkFleetEdges()
	speed := f.settings.Dynamic().FleetSpeed
	f.Fleet.Each(func(a *component.Alien) {
		a.Update(f.Direction, speed)
		f.world.Move(a.ID, a.Rect)
	})
}

// checkFleetEdges: первый же пришелец у границы опускает весь флот и
// разворачивает его. За кадр — не больше одного разворота.
func (f *AlienFleet) checkFleetEdges() bool {
	screenW := float64(f.settings.ScreenW)
	if !f.Fleet.Any(func(a *component.Alien) bool { return a.CheckEdges(screenW) }) {
		return false
	}
	f.dropAlienFleet()
	f.Direction = f.Direction.Flip()
	return true
}

func (f *AlienFleet) dropAlienFleet() {
	f.Fleet.Each(func(a *component.Alien) {
		a.Drop(f.DropSpeed)
		f.world.Move(a.ID, a.Rect)
	})
}

// CheckCollisions находит пересечения пришельцев со снарядами арсенала.
// Обе стороны каждой пары удаляются; снаряд уничтожает не больше одного пришельца.
func (f *AlienFleet) CheckCollisions(arsenal *Arsenal) []Hit {
	var hits []Hit
	for _, alien := range f.Fleet.Items() {
		var struck []*component.Projectile
		for _, id := range f.world.Touching(alien.ID, physics.KindProjectile) {
			if p, ok := arsenal.Remove(id); ok {
				struck = append(struck, p)
			}
		}
		if len(struck) == 0 {
			continue
		}
		f.removeAlien(alien)
		hits = append(hits, Hit{Alien: alien, Projectiles: struck})
	}
	return hits
}

func (f *AlienFleet) removeAlien(a *component.Alien) {
	f.Fleet.Remove(a.ID)
	f.world.Remove(a.ID)
}

// CheckFleetBottom — хотя бы один пришелец дошёл до нижнего края.
func (f *AlienFleet) CheckFleetBottom() bool {
	screenH := float64(f.settings.ScreenH)
	return f.Fleet.Any(func(a *component.Alien) bool { return a.Rect.Bottom() >= screenH })
}

// CheckDestroyedStatus — флот полностью уничтожен.
func (f *AlienFleet) CheckDestroyedStatus() bool {
	return f.Fleet.Len() == 0
}

// Empty убирает всех пришельцев.
func (f *AlienFleet) Empty() {
	f.Fleet.Clear()
	f.world.Clear(physics.KindAlien)
}

// Draw рисует всех пришельцев.
func (f *AlienFleet) Draw(s render.Surface) {
	f.Fleet.Each(func(a *component.Alien) {
		s.DrawSprite(render.SpriteAlien, a.Rect)
	})
}
