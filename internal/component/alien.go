// internal/component/alien.go
package component

import (
	"alien-invasion/internal/entity"
	"alien-invasion/pkg/geom"
)

// Alien — один член флота. Направление движения хранит флот, а не пришелец.
type Alien struct {
	ID   entity.ID
	Rect geom.Rect
}

func NewAlien(id entity.ID, x, y, w, h float64) *Alien {
	return &Alien{ID: id, Rect: geom.NewRect(x, y, w, h)}
}

func (a *Alien) EntityID() entity.ID { return a.ID }
func (a *Alien) Bounds() geom.Rect   { return a.Rect }

// Update сдвигает пришельца по горизонтали на direction*speed.
func (a *Alien) Update(direction Direction, speed float64) {
	a.Rect.X += float64(direction) * speed
}

// Drop опускает пришельца на dy.
func (a *Alien) Drop(dy float64) {
	a.Rect.Y += dy
}

// CheckEdges сообщает, касается ли пришелец левой или правой границы экрана.
func (a *Alien) CheckEdges(screenW float64) bool {
	return a.Rect.Right() >= screenW || a.Rect.Left() <= 0
}
