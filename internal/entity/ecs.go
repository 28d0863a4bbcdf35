// internal/entity/ecs.go
package entity

import "alien-invasion/pkg/geom"

// ID — идентификатор сущности
type ID uint64

// Entity — набор возможностей, которые требуются от члена группы:
// идентификатор и занимаемый прямоугольник.
type Entity interface {
	EntityID() ID
	Bounds() geom.Rect
}

// Registry выдаёт уникальные идентификаторы сущностей.
type Registry struct {
	NextID ID
}

func NewRegistry() *Registry {
	return &Registry{NextID: 1}
}

func (r *Registry) NewEntity() ID {
	id := r.NextID
	r.NextID++
	return id
}
