package system

import (
	"testing"

	"alien-invasion/internal/component"
	"alien-invasion/internal/config"
	"alien-invasion/internal/entity"
	"alien-invasion/internal/physics"
)

func newTestSettings() *config.Settings {
	s := config.Default()
	s.InitializeDynamicSettings()
	return s
}

type fixture struct {
	settings *config.Settings
	world    *physics.World
	fleet    *AlienFleet
	ship     *Ship
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := newTestSettings()
	reg := entity.NewRegistry()
	world := physics.NewWorld(s.ScreenW, s.ScreenH, physics.DefaultCellSize)
	arsenal := NewArsenal(s, reg, world)
	return &fixture{
		settings: s,
		world:    world,
		fleet:    NewAlienFleet(s, reg, world),
		ship:     NewShip(s, reg, world, arsenal),
	}
}

func TestFleetSize(t *testing.T) {
	tests := []struct {
		name                           string
		alienW, screenW, alienH, screenH int
		wantW, wantH                   int
	}{
		{"default screen", 60, 1200, 60, 800, 19, 5},
		{"odd raw counts", 100, 900, 100, 600, 7, 1},
		{"tiny screen clamps to zero", 60, 60, 60, 100, 0, 0},
		{"zero alien size", 0, 1200, 60, 800, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FleetSize(tt.alienW, tt.screenW, tt.alienH, tt.screenH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}

func TestFleetSizeIsOddOrZero(t *testing.T) {
	for screenW := 100; screenW <= 2000; screenW += 37 {
		for alienW := 10; alienW <= 120; alienW += 11 {
			w, h := FleetSize(alienW, screenW, alienW, screenW)
			if w < 0 || h < 0 {
				t.Fatalf("negative fleet size %dx%d", w, h)
			}
			if w != 0 && w%2 == 0 {
				t.Errorf("expected odd width, got %d (alien %d, screen %d)", w, alienW, screenW)
			}
			if h != 0 && h%2 == 0 {
				t.Errorf("expected odd height, got %d (alien %d, screen %d)", h, alienW, screenW)
			}
		}
	}
}

func TestFleetOffsets(t *testing.T) {
	x, y := FleetOffsets(60, 60, 1200, 800, 19, 5)
	if x != 30 || y != 50 {
		t.Errorf("expected offsets (30, 50), got (%d, %d)", x, y)
	}
	// Блок шире экрана даёт отрицательное смещение, округлённое вниз
	x, _ = FleetOffsets(7, 10, 10, 100, 3, 1)
	if x != -6 {
		t.Errorf("expected floor(-11/2) = -6, got %d", x)
	}
}

func TestCheckerboard(t *testing.T) {
	if IsOccupied(0, 0) || !IsOccupied(0, 1) || !IsOccupied(1, 0) || IsOccupied(1, 1) {
		t.Error("unexpected checkerboard pattern")
	}
	cells := CheckerboardCells(19, 5)
	if len(cells) != 47 {
		t.Errorf("expected 47 occupied cells, got %d", len(cells))
	}
	for _, c := range cells {
		if (c.Row+c.Col)%2 != 1 {
			t.Errorf("cell %+v should be empty", c)
		}
	}
}

func TestCreateFleet(t *testing.T) {
	f := newFixture(t)
	if got := f.fleet.Fleet.Len(); got != 47 {
		t.Fatalf("expected 47 aliens, got %d", got)
	}
	if f.fleet.Capacity() != 47 {
		t.Errorf("expected capacity 47, got %d", f.fleet.Capacity())
	}
	if f.world.Len(physics.KindAlien) != 47 {
		t.Errorf("expected 47 alien bodies, got %d", f.world.Len(physics.KindAlien))
	}
	half := float64(f.settings.ScreenH) / 2
	f.fleet.Fleet.Each(func(a *component.Alien) {
		if a.Rect.Bottom() > half {
			t.Errorf("alien %v below the top half", a.Rect)
		}
		if a.Rect.Left() < 0 || a.Rect.Right() > float64(f.settings.ScreenW) {
			t.Errorf("alien %v outside the screen", a.Rect)
		}
	})
}

func TestUpdateFleetMoves(t *testing.T) {
	f := newFixture(t)
	first := f.fleet.Fleet.Items()[0]
	x, y := first.Rect.X, first.Rect.Y

	f.fleet.UpdateFleet()
	if first.Rect.X != x+2 || first.Rect.Y != y {
		t.Errorf("expected move to (%v, %v), got (%v, %v)", x+2, y, first.Rect.X, first.Rect.Y)
	}
	if f.fleet.Direction != component.Right {
		t.Errorf("expected direction right, got %v", f.fleet.Direction)
	}
}

func TestFleetEdgeDropsAndReverses(t *testing.T) {
	f := newFixture(t)
	aliens := f.fleet.Fleet.Items()
	// Один пришелец у правого края, другой у левого: разворот всё равно один
	aliens[0].Rect.X = float64(f.settings.ScreenW) - aliens[0].Rect.W
	aliens[1].Rect.X = 0
	y0 := aliens[0].Rect.Y
	other := aliens[5]
	x5, y5 := other.Rect.X, other.Rect.Y

	f.fleet.UpdateFleet()

	if f.fleet.Direction != component.Left {
		t.Fatalf("expected direction left after edge, got %v", f.fleet.Direction)
	}
	if aliens[0].Rect.Y != y0+30 {
		t.Errorf("expected drop by 30, got %v", aliens[0].Rect.Y-y0)
	}
	if other.Rect.Y != y5+30 || other.Rect.X != x5-2 {
		t.Errorf("expected every alien to drop and move left, got dx=%v dy=%v", other.Rect.X-x5, other.Rect.Y-y5)
	}
}

func TestFleetBottomAndDestroyed(t *testing.T) {
	f := newFixture(t)
	if f.fleet.CheckFleetBottom() {
		t.Error("fresh fleet should not be at the bottom")
	}
	a := f.fleet.Fleet.Items()[3]
	a.Rect.Y = float64(f.settings.ScreenH) - a.Rect.H
	if !f.fleet.CheckFleetBottom() {
		t.Error("expected bottom detection when bottom == screen height")
	}

	f.fleet.Empty()
	if !f.fleet.CheckDestroyedStatus() {
		t.Error("expected empty fleet to be destroyed")
	}
	if f.world.Len(physics.KindAlien) != 0 {
		t.Errorf("expected no alien bodies, got %d", f.world.Len(physics.KindAlien))
	}
}

func TestArsenalCapacity(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		if !f.ship.Fire() {
			t.Fatalf("shot %d should fire", i+1)
		}
	}
	if f.ship.Fire() {
		t.Error("sixth shot should be rejected")
	}
	if f.ship.Arsenal.Len() != 5 {
		t.Errorf("expected 5 projectiles, got %d", f.ship.Arsenal.Len())
	}
}

func TestArsenalRemovesOffscreen(t *testing.T) {
	f := newFixture(t)
	f.ship.Arsenal.FireBullet(100, 10)
	f.ship.Arsenal.FireBullet(300, 500)

	// Нижняя грань первого на 10: через 2 кадра по 7 пикселей он за верхом
	for i := 0; i < 2; i++ {
		f.ship.Arsenal.UpdateArsenal()
	}
	if f.ship.Arsenal.Len() != 1 {
		t.Fatalf("expected 1 projectile left, got %d", f.ship.Arsenal.Len())
	}
	if f.world.Len(physics.KindProjectile) != 1 {
		t.Errorf("expected 1 projectile body, got %d", f.world.Len(physics.KindProjectile))
	}
}

func TestProjectileHitsAlien(t *testing.T) {
	f := newFixture(t)
	target := f.fleet.Fleet.Items()[0]
	f.ship.Arsenal.FireBullet(target.Rect.CenterX(), target.Rect.Top()+10)

	hits := f.fleet.CheckCollisions(f.ship.Arsenal)
	if len(hits) != 1 || hits[0].Alien != target {
		t.Fatalf("expected a single hit on the target, got %d", len(hits))
	}
	if len(hits[0].Projectiles) != 1 {
		t.Errorf("expected 1 projectile in the hit, got %d", len(hits[0].Projectiles))
	}
	if f.fleet.Fleet.Len() != 46 || f.ship.Arsenal.Len() != 0 {
		t.Errorf("expected 46 aliens and 0 projectiles, got %d and %d", f.fleet.Fleet.Len(), f.ship.Arsenal.Len())
	}
}

func TestProjectileDestroysAtMostOneAlien(t *testing.T) {
	f := newFixture(t)
	// Снаряд на стыке клеток (0,1) и (1,0) задевает обоих пришельцев
	f.ship.Arsenal.FireBullet(90, 140)

	hits := f.fleet.CheckCollisions(f.ship.Arsenal)
	if len(hits) != 1 {
		t.Fatalf("expected exactly one destroyed alien, got %d", len(hits))
	}
	if f.fleet.Fleet.Len() != 46 {
		t.Errorf("expected 46 aliens left, got %d", f.fleet.Fleet.Len())
	}
}

func TestMissDoesNothing(t *testing.T) {
	f := newFixture(t)
	f.ship.Arsenal.FireBullet(600, 700)
	if hits := f.fleet.CheckCollisions(f.ship.Arsenal); len(hits) != 0 {
		t.Errorf("expected no hits, got %d", len(hits))
	}
	if f.ship.Arsenal.Len() != 1 {
		t.Errorf("projectile should survive a miss")
	}
}

func TestShipMovementStaysOnScreen(t *testing.T) {
	f := newFixture(t)
	start := f.ship.Rect
	if start.CenterX() != 600 || start.Bottom() != 800 {
		t.Fatalf("expected ship at midbottom, got %v", start)
	}

	f.ship.MovingRight = true
	f.ship.Update()
	if f.ship.Rect.X != start.X+5 {
		t.Errorf("expected move right by 5, got %v", f.ship.Rect.X-start.X)
	}

	// 3 пикселя до края: шаг в 5 пропускается целиком
	f.ship.Rect.X = float64(f.settings.ScreenW) - f.ship.Rect.W - 3
	x := f.ship.Rect.X
	f.ship.Update()
	if f.ship.Rect.X != x {
		t.Errorf("expected no move past the right edge, got %v", f.ship.Rect.X)
	}

	f.ship.MovingRight = false
	f.ship.MovingLeft = true
	f.ship.Rect.X = 2
	f.ship.Update()
	if f.ship.Rect.X != 2 {
		t.Errorf("expected no move past the left edge, got %v", f.ship.Rect.X)
	}
}

func TestShipBothDirectionsCancel(t *testing.T) {
	f := newFixture(t)
	x := f.ship.Rect.X
	f.ship.MovingLeft, f.ship.MovingRight = true, true
	f.ship.Update()
	if f.ship.Rect.X != x {
		t.Errorf("expected no net movement, got %v", f.ship.Rect.X-x)
	}
}

func TestShipFiresFromTopCenter(t *testing.T) {
	f := newFixture(t)
	f.ship.Fire()
	p := f.ship.Arsenal.Arsenal.Items()[0]
	if p.Rect.CenterX() != f.ship.Rect.CenterX() || p.Rect.Bottom() != f.ship.Rect.Top() {
		t.Errorf("expected projectile above ship midtop, got %v", p.Rect)
	}
	if p.Rect.Overlaps(f.ship.Rect) {
		t.Errorf("projectile %v spawned inside the ship %v", p.Rect, f.ship.Rect)
	}
}

func TestShipCollisionRecenters(t *testing.T) {
	f := newFixture(t)
	if f.ship.CheckCollisions(f.fleet.Fleet) {
		t.Fatal("no collision expected at start")
	}

	f.ship.Rect.X = 100
	f.world.Move(f.ship.ID, f.ship.Rect)
	a := f.fleet.Fleet.Items()[0]
	a.Rect.X, a.Rect.Y = 110, f.ship.Rect.Y-20
	f.world.Move(a.ID, a.Rect)

	if !f.ship.CheckCollisions(f.fleet.Fleet) {
		t.Fatal("expected ship collision")
	}
	if f.ship.Rect.CenterX() != 600 {
		t.Errorf("expected ship recentered, got center %v", f.ship.Rect.CenterX())
	}
}

func TestTwoProjectilesOnOneAlien(t *testing.T) {
	f := newFixture(t)
	target := f.fleet.Fleet.Items()[0]
	f.ship.Arsenal.FireBullet(target.Rect.CenterX()-5, target.Rect.Bottom()+5)
	f.ship.Arsenal.FireBullet(target.Rect.CenterX()+5, target.Rect.Bottom()+5)

	hits := f.fleet.CheckCollisions(f.ship.Arsenal)
	if len(hits) != 1 || hits[0].Alien != target {
		t.Fatalf("expected one destroyed alien, got %d", len(hits))
	}
	if len(hits[0].Projectiles) != 2 {
		t.Errorf("expected both projectiles in the hit, got %d", len(hits[0].Projectiles))
	}
	if f.ship.Arsenal.Len() != 0 || f.world.Len(physics.KindProjectile) != 0 {
		t.Errorf("expected both projectiles removed, got %d", f.ship.Arsenal.Len())
	}
	if f.fleet.Fleet.Len() != 46 {
		t.Errorf("expected 46 aliens left, got %d", f.fleet.Fleet.Len())
	}
}

func TestEmptyRemovesBodies(t *testing.T) {
	f := newFixture(t)
	f.ship.Fire()
	f.ship.Fire()

	f.ship.Arsenal.Empty()
	f.fleet.Empty()
	if f.ship.Arsenal.Len() != 0 || f.fleet.Fleet.Len() != 0 {
		t.Fatalf("expected empty groups, got %d projectiles and %d aliens", f.ship.Arsenal.Len(), f.fleet.Fleet.Len())
	}
	if n := f.world.Len(physics.KindProjectile) + f.world.Len(physics.KindAlien); n != 0 {
		t.Errorf("expected no projectile or alien bodies, got %d", n)
	}
	if f.world.Len(physics.KindShip) != 1 {
		t.Error("the ship body must survive")
	}
}
