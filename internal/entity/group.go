// internal/entity/group.go
package entity

// Group — неупорядоченное множество сущностей. Порядок обхода не гарантируется
// и не должен влиять на логику.
type Group[T Entity] struct {
	items []T
	index map[ID]int
}

func NewGroup[T Entity]() *Group[T] {
	return &Group[T]{index: make(map[ID]int)}
}

// Add добавляет сущность. Повторное добавление того же ID заменяет запись.
func (g *Group[T]) Add(item T) {
	id := item.EntityID()
	if i, ok := g.index[id]; ok {
		g.items[i] = item
		return
	}
	g.index[id] = len(g.items)
	g.items = append(g.items, item)
}

// Remove удаляет сущность по ID; возвращает false, если её не было.
func (g *Group[T]) Remove(id ID) bool {
	i, ok := g.index[id]
	if !ok {
		return false
	}
	last := len(g.items) - 1
	if i != last {
		g.items[i] = g.items[last]
		g.index[g.items[i].EntityID()] = i
	}
	var zero T
	g.items[last] = zero
	g.items = g.items[:last]
	delete(g.index, id)
	return true
}

// Get возвращает сущность по ID.
func (g *Group[T]) Get(id ID) (T, bool) {
	if i, ok := g.index[id]; ok {
		return g.items[i], true
	}
	var zero T
	return zero, false
}

func (g *Group[T]) Has(id ID) bool {
	_, ok := g.index[id]
	return ok
}

func (g *Group[T]) Len() int {
	return len(g.items)
}

// Each обходит все сущности. Удалять из группы внутри fn нельзя.
func (g *Group[T]) Each(fn func(T)) {
	for _, item := range g.items {
		fn(item)
	}
}

// Find возвращает первую сущность, для которой pred вернул true.
func (g *Group[T]) Find(pred func(T) bool) (T, bool) {
	for _, item := range g.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Any сообщает, есть ли хотя бы одна сущность, удовлетворяющая pred.
func (g *Group[T]) Any(pred func(T) bool) bool {
	_, ok := g.Find(pred)
	return ok
}

// RemoveIf удаляет все сущности, для которых pred вернул true, и возвращает их.
func (g *Group[T]) RemoveIf(pred func(T) bool) []T {
	var removed []T
	for i := 0; i < len(g.items); {
		item := g.items[i]
		if pred(item) {
			removed = append(removed, item)
			g.Remove(item.EntityID())
			continue // на место i встал последний элемент
		}
		i++
	}
	return removed
}

// Items возвращает копию содержимого.
func (g *Group[T]) Items() []T {
	out := make([]T, len(g.items))
	copy(out, g.items)
	return out
}

// Clear удаляет все сущности и возвращает их.
func (g *Group[T]) Clear() []T {
	removed := g.items
	g.items = nil
	g.index = make(map[ID]int)
	return removed
}
