// internal/component/projectile.go
package component

import (
	"alien-invasion/internal/entity"
	"alien-invasion/pkg/geom"
)

// Projectile — снаряд корабля, летит строго вверх.
type Projectile struct {
	ID   entity.ID
	Rect geom.Rect
}

// NewProjectile создаёт снаряд, у которого середина нижней грани стоит в (x, y):
// выстрел появляется над кораблём, а не внутри него.
func NewProjectile(id entity.ID, w, h, x, y float64) *Projectile {
	return &Projectile{
		ID:   id,
		Rect: geom.NewRect(0, 0, w, h).WithMidBottom(x, y),
	}
}

func (p *Projectile) EntityID() entity.ID { return p.ID }
func (p *Projectile) Bounds() geom.Rect   { return p.Rect }

// Update поднимает снаряд на speed пикселей.
func (p *Projectile) Update(speed float64) {
	p.Rect.Y -= speed
}

// OffScreen — снаряд целиком ушёл за верхний край.
func (p *Projectile) OffScreen() bool {
	return p.Rect.Bottom() <= 0
}
