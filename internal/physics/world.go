// internal/physics/world.go
package physics

import (
	"alien-invasion/internal/entity"
	"alien-invasion/pkg/geom"

	"github.com/solarlune/resolv"
)

// Kind — категория тела; по ней фильтруются проверки пересечений.
type Kind int

const (
	KindShip Kind = iota
	KindAlien
	KindProjectile
)

// tags help resolv filter which shapes to test against
var (
	tagShip       = resolv.NewTag("ship")
	tagAlien      = resolv.NewTag("alien")
	tagProjectile = resolv.NewTag("projectile")
)

// DefaultCellSize — размер ячейки сетки broadphase (примерно размер пришельца).
const DefaultCellSize = 32

// body связывает сущность с её формой в пространстве resolv.
type body struct {
	id    entity.ID
	kind  Kind
	rect  geom.Rect
	shape resolv.IShape
}

// World — пространство столкновений. Пространство resolv шире экрана на margin
// с каждой стороны, чтобы снаряды у верхнего края и флот у боковых краёв
// оставались внутри сетки.
type World struct {
	space  *resolv.Space
	margin float64
	bodies map[entity.ID]*body
	owners map[resolv.IShape]*body
}

// NewWorld создаёт пространство для экрана width x height.
func NewWorld(width, height, cellSize int) *World {
	margin := 4 * cellSize
	if margin < 256 {
		margin = 256
	}
	return &World{
		space:  resolv.NewSpace(width+2*margin, height+2*margin, cellSize, cellSize),
		margin: float64(margin),
		bodies: make(map[entity.ID]*body),
		owners: make(map[resolv.IShape]*body),
	}
}

// Add регистрирует тело сущности id.
func (w *World) Add(id entity.ID, kind Kind, r geom.Rect) {
	if _, exists := w.bodies[id]; exists {
		w.Remove(id)
	}
	shape := resolv.NewRectangleTopLeft(r.X+w.margin, r.Y+w.margin, r.W, r.H)
	switch kind {
	case KindShip:
		shape.Tags().Set(tagShip)
	case KindAlien:
		shape.Tags().Set(tagAlien)
	case KindProjectile:
		shape.Tags().Set(tagProjectile)
	}
	w.space.Add(shape)

	b := &body{id: id, kind: kind, rect: r, shape: shape}
	w.bodies[id] = b
	w.owners[shape] = b
}

// Move переносит тело в новую позицию. Размер тела не меняется.
// Форма сдвигается на разницу позиций: так не важно, где у формы опорная точка.
func (w *World) Move(id entity.ID, r geom.Rect) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	dx, dy := r.X-b.rect.X, r.Y-b.rect.Y
	if dx == 0 && dy == 0 {
		return
	}
	b.rect.X, b.rect.Y = r.X, r.Y
	b.shape.Move(dx, dy)
}

// Remove убирает тело из пространства.
func (w *World) Remove(id entity.ID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	w.space.Remove(b.shape)
	delete(w.owners, b.shape)
	delete(w.bodies, id)
}

// Clear убирает все тела заданной категории.
func (w *World) Clear(kind Kind) {
	for id, b := range w.bodies {
		if b.kind == kind {
			w.Remove(id)
		}
	}
}

// Len возвращает число тел категории kind.
func (w *World) Len(kind Kind) int {
	n := 0
	for _, b := range w.bodies {
		if b.kind == kind {
			n++
		}
	}
	return n
}

// Touching возвращает ID тел категории kind, которые пересекаются с телом id.
// Касание гранями пересечением не считается.
func (w *World) Touching(id entity.ID, kind Kind) []entity.ID {
	b, ok := w.bodies[id]
	if !ok {
		return nil
	}

	var hits []entity.ID
	seen := make(map[entity.ID]bool)
	settings := resolv.IntersectionTestSettings{
		OnIntersect: func(set resolv.IntersectionSet) bool {
			other, known := w.owners[set.OtherShape]
			if !known || other.kind != kind || other.id == id || seen[other.id] {
				return true
			}
			if b.rect.Overlaps(other.rect) {
				seen[other.id] = true
				hits = append(hits, other.id)
			}
			return true // проверяем все фигуры, а не только первую
		},
	}
	switch kind {
	case KindShip:
		settings.TestAgainst = b.shape.SelectTouchingCells(0).FilterShapes().ByTags(tagShip)
	case KindAlien:
		settings.TestAgainst = b.shape.SelectTouchingCells(0).FilterShapes().ByTags(tagAlien)
	case KindProjectile:
		settings.TestAgainst = b.shape.SelectTouchingCells(0).FilterShapes().ByTags(tagProjectile)
	}
	b.shape.IntersectionTest(settings)
	return hits
}
