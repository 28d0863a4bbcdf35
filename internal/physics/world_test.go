package physics

import (
	"testing"

	"alien-invasion/internal/entity"
	"alien-invasion/pkg/geom"
)

func TestWorldTouching(t *testing.T) {
	w := NewWorld(1200, 800, DefaultCellSize)
	reg := entity.NewRegistry()

	alien := reg.NewEntity()
	bullet := reg.NewEntity()
	far := reg.NewEntity()

	w.Add(alien, KindAlien, geom.NewRect(100, 100, 60, 60))
	w.Add(bullet, KindProjectile, geom.NewRect(120, 130, 25, 80))
	w.Add(far, KindProjectile, geom.NewRect(900, 600, 25, 80))

	hits := w.Touching(alien, KindProjectile)
	if len(hits) != 1 || hits[0] != bullet {
		t.Fatalf("expected only bullet %d, got %v", bullet, hits)
	}
	if hits := w.Touching(alien, KindAlien); len(hits) != 0 {
		t.Errorf("an alien must not report itself, got %v", hits)
	}

	w.Move(bullet, geom.NewRect(500, 130, 25, 80))
	if hits := w.Touching(alien, KindProjectile); len(hits) != 0 {
		t.Errorf("expected no hits after moving apart, got %v", hits)
	}

	w.Move(far, geom.NewRect(110, 110, 25, 80))
	if hits := w.Touching(alien, KindProjectile); len(hits) != 1 || hits[0] != far {
		t.Errorf("expected moved body %d, got %v", far, hits)
	}

	w.Remove(far)
	if hits := w.Touching(alien, KindProjectile); len(hits) != 0 {
		t.Errorf("expected no hits after removal, got %v", hits)
	}
}

func TestWorldShapesAnchoredTopLeft(t *testing.T) {
	w := NewWorld(1200, 800, DefaultCellSize)
	w.Add(1, KindAlien, geom.NewRect(100, 100, 60, 60))
	// Пересечение только по правому нижнему углу: при опоре формы в центре
	// resolv не нашёл бы кандидата
	w.Add(2, KindProjectile, geom.NewRect(155, 155, 10, 10))
	w.Add(3, KindProjectile, geom.NewRect(75, 75, 10, 10))

	hits := w.Touching(1, KindProjectile)
	if len(hits) != 1 || hits[0] != 2 {
		t.Errorf("expected only the corner body 2, got %v", hits)
	}

	w.Move(1, geom.NewRect(40, 40, 60, 60))
	hits = w.Touching(1, KindProjectile)
	if len(hits) != 1 || hits[0] != 3 {
		t.Errorf("expected body 3 after the move, got %v", hits)
	}
}

func TestWorldEdgeContactIsNotOverlap(t *testing.T) {
	w := NewWorld(1200, 800, DefaultCellSize)
	w.Add(1, KindShip, geom.NewRect(570, 740, 60, 60))
	w.Add(2, KindAlien, geom.NewRect(570, 680, 60, 60)) // нижняя грань касается верхней грани корабля

	if hits := w.Touching(1, KindAlien); len(hits) != 0 {
		t.Errorf("edge contact must not count, got %v", hits)
	}
}

func TestWorldOffscreenBodies(t *testing.T) {
	w := NewWorld(1200, 800, DefaultCellSize)
	w.Add(1, KindAlien, geom.NewRect(-20, 100, 60, 60))
	w.Add(2, KindProjectile, geom.NewRect(-10, 80, 25, 80))

	if hits := w.Touching(1, KindProjectile); len(hits) != 1 {
		t.Errorf("bodies partly beyond the screen must still collide, got %v", hits)
	}
}

func TestWorldClear(t *testing.T) {
	w := NewWorld(1200, 800, DefaultCellSize)
	w.Add(1, KindAlien, geom.NewRect(0, 0, 10, 10))
	w.Add(2, KindAlien, geom.NewRect(20, 0, 10, 10))
	w.Add(3, KindProjectile, geom.NewRect(40, 0, 10, 10))

	w.Clear(KindAlien)
	if w.Len(KindAlien) != 0 {
		t.Errorf("expected no aliens, got %d", w.Len(KindAlien))
	}
	if w.Len(KindProjectile) != 1 {
		t.Errorf("projectiles must survive clearing aliens, got %d", w.Len(KindProjectile))
	}
	if hits := w.Touching(1, KindProjectile); hits != nil {
		t.Errorf("removed body must report nothing, got %v", hits)
	}
}
