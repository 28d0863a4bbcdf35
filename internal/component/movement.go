// internal/component/movement.go
package component

// Direction — горизонтальное направление движения флота
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// DirectionOf приводит значение из настроек к направлению: всё неположительное — влево.
func DirectionOf(v int) Direction {
	if v <= 0 {
		return Left
	}
	return Right
}

// Flip разворачивает направление.
func (d Direction) Flip() Direction {
	return -d
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}
