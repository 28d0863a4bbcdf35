package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScaleColorSaturates(t *testing.T) {
	got := ScaleColor(color.RGBA{200, 100, 0, 128}, 2)
	want := color.RGBA{255, 200, 0, 128}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestToRGBA(t *testing.T) {
	if got := ToRGBA(color.White); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected opaque white, got %v", got)
	}
	c := color.RGBA{1, 2, 3, 4}
	if got := ToRGBA(c); got != c {
		t.Errorf("expected passthrough %v, got %v", c, got)
	}
}
