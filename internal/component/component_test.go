package component

import "testing"

func TestDirection(t *testing.T) {
	if DirectionOf(1) != Right || DirectionOf(-1) != Left || DirectionOf(0) != Left {
		t.Error("unexpected DirectionOf mapping")
	}
	if Right.Flip() != Left || Left.Flip() != Right {
		t.Error("Flip must negate the direction")
	}
	if Left.String() != "left" || Right.String() != "right" {
		t.Error("unexpected String output")
	}
}

func TestAlienMovement(t *testing.T) {
	a := NewAlien(1, 100, 50, 60, 60)
	a.Update(Right, 2.5)
	if a.Rect.X != 102.5 {
		t.Errorf("expected x=102.5, got %v", a.Rect.X)
	}
	a.Update(Left, 2.5)
	a.Drop(30)
	if a.Rect.X != 100 || a.Rect.Y != 80 {
		t.Errorf("expected (100,80), got (%v,%v)", a.Rect.X, a.Rect.Y)
	}
}

func TestAlienCheckEdges(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"middle", 500, false},
		{"touching left", 0, true},
		{"past left", -1, true},
		{"touching right", 1140, true},
		{"just inside right", 1139, false},
	}
	for _, tt := range tests {
		a := NewAlien(1, tt.x, 0, 60, 60)
		if got := a.CheckEdges(1200); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestProjectile(t *testing.T) {
	p := NewProjectile(7, 25, 80, 600, 740)
	if p.Rect.X != 587.5 || p.Rect.Y != 660 || p.Rect.Bottom() != 740 {
		t.Errorf("expected bottom-center spawn at (587.5,660), got (%v,%v)", p.Rect.X, p.Rect.Y)
	}
	if p.EntityID() != 7 {
		t.Errorf("expected id 7, got %d", p.EntityID())
	}

	p.Update(7)
	if p.Rect.Y != 653 {
		t.Errorf("expected y=653, got %v", p.Rect.Y)
	}

	p.Rect.Y = -79
	if p.OffScreen() {
		t.Error("projectile with bottom at 1 is still visible")
	}
	p.Rect.Y = -80
	if !p.OffScreen() {
		t.Error("projectile with bottom at 0 must be off screen")
	}
}
