// pkg/geom/rect.go
package geom

// Rect — прямоугольник с вещественными координатами (левый верхний угол + размер).
// Координаты хранятся как float64, чтобы копить субпиксельные смещения.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect создаёт прямоугольник по левому верхнему углу и размеру.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX возвращает горизонтальный центр.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY возвращает вертикальный центр.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// WithMidBottom возвращает копию, у которой середина нижней грани стоит в (x, y).
func (r Rect) WithMidBottom(x, y float64) Rect {
	r.X = x - r.W/2
	r.Y = y - r.H
	return r
}

// WithMidTop возвращает копию, у которой середина верхней грани стоит в (x, y).
func (r Rect) WithMidTop(x, y float64) Rect {
	r.X = x - r.W/2
	r.Y = y
	return r
}

// WithCenter возвращает копию с центром в (x, y).
func (r Rect) WithCenter(x, y float64) Rect {
	r.X = x - r.W/2
	r.Y = y - r.H/2
	return r
}

// Translate сдвигает прямоугольник.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps — строгое пересечение: касание гранями пересечением не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains проверяет, лежит ли точка внутри (правая и нижняя граница не включаются).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
