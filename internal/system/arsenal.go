// internal/system/arsenal.go
package system

import (
	"alien-invasion/internal/component"
	"alien-invasion/internal/config"
	"alien-invasion/internal/entity"
	"alien-invasion/internal/physics"
	"alien-invasion/pkg/render"
)

// Arsenal — ограниченный набор летящих снарядов корабля.
type Arsenal struct {
	settings *config.Settings
	registry *entity.Registry
	world    *physics.World
	Arsenal  *entity.Group[*component.Projectile]
}

func NewArsenal(settings *config.Settings, registry *entity.Registry, world *physics.World) *Arsenal {
	return &Arsenal{
		settings: settings,
		registry: registry,
		world:    world,
		Arsenal:  entity.NewGroup[*component.Projectile](),
	}
}

// FireBullet выпускает снаряд из точки (x, y) — середины верхней грани корабля.
// Если арсенал полон, ничего не происходит и возвращается false.
func (a *Arsenal) FireBullet(x, y float64) bool {
	d := a.settings.Dynamic()
	if a.Arsenal.Len() >= d.BulletAmount {
		return false
	}
	p := component.NewProjectile(a.registry.NewEntity(), float64(d.BulletW), float64(d.BulletH), x, y)
	a.Arsenal.Add(p)
	a.world.Add(p.ID, physics.KindProjectile, p.Rect)
	return true
}

// UpdateArsenal двигает снаряды и убирает улетевшие за верхний край.
func (a *Arsenal) UpdateArsenal() {
	speed := a.settings.Dynamic().BulletSpeed
	a.Arsenal.Each(func(p *component.Projectile) {
		p.Update(speed)
		a.world.Move(p.ID, p.Rect)
	})
	a.removeBulletsOffscreen()
}

func (a *Arsenal) removeBulletsOffscreen() {
	for _, p := range a.Arsenal.RemoveIf((*component.Projectile).OffScreen) {
		a.world.Remove(p.ID)
	}
}

// Remove убирает снаряд по ID и возвращает его.
func (a *Arsenal) Remove(id entity.ID) (*component.Projectile, bool) {
	p, ok := a.Arsenal.Get(id)
	if !ok {
		return nil, false
	}
	a.Arsenal.Remove(id)
	a.world.Remove(id)
	return p, true
}

// Len — число летящих снарядов.
func (a *Arsenal) Len() int {
	return a.Arsenal.Len()
}

// Empty убирает все снаряды.
func (a *Arsenal) Empty() {
	a.Arsenal.Clear()
	a.world.Clear(physics.KindProjectile)
}

func (a *Arsenal) Draw(s render.Surface) {
	a.Arsenal.Each(func(p *component.Projectile) {
		s.DrawSprite(render.SpriteBullet, p.Rect)
	})
}
