// internal/system/layout.go
package system

// Cell — клетка сетки флота
type Cell struct {
	Row, Col int
}

// Layout — рассчитанная раскладка флота: размер сетки, смещения и занятые клетки.
type Layout struct {
	Cols, Rows       int
	OffsetX, OffsetY int
	Cells            []Cell
}

// FleetSize считает число колонок и рядов флота. Флот занимает только верхнюю
// половину экрана. Оба числа приводятся к нечётным (чётное -1, нечётное -2),
// чтобы у шахматного узора были центральная колонка и центральный ряд.
// Если сетка не помещается, результат обрезается до нуля.
func FleetSize(alienW, screenW, alienH, screenH int) (fleetW, fleetH int) {
	if alienW <= 0 || alienH <= 0 {
		return 0, 0
	}
	fleetW = makeOdd(screenW / alienW)
	fleetH = makeOdd(screenH / (2 * alienH))
	return fleetW, fleetH
}

func makeOdd(n int) int {
	if n%2 == 0 {
		n--
	} else {
		n -= 2
	}
	if n < 0 {
		return 0
	}
	return n
}

// FleetOffsets центрирует блок fleetW x fleetH по ширине экрана и внутри верхней
// половины по высоте. Смещения могут быть отрицательными и не обрезаются.
func FleetOffsets(alienW, alienH, screenW, screenH, fleetW, fleetH int) (xOffset, yOffset int) {
	halfScreen := screenH / 2
	xOffset = floorDiv(screenW-fleetW*alienW, 2)
	yOffset = floorDiv(halfScreen-fleetH*alienH, 2)
	return xOffset, yOffset
}

// floorDiv — деление с округлением вниз и для отрицательных чисел
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// IsOccupied — правило шахматного узора: в нечётных рядах заняты чётные колонки,
// в чётных рядах — нечётные, то есть клетка занята, если row+col нечётно.
func IsOccupied(row, col int) bool {
	return (row+col)%2 == 1
}

// CheckerboardCells перечисляет занятые клетки сетки fleetW x fleetH построчно.
func CheckerboardCells(fleetW, fleetH int) []Cell {
	var cells []Cell
	for row := 0; row < fleetH; row++ {
		for col := 0; col < fleetW; col++ {
			if IsOccupied(row, col) {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// ComputeLayout собирает полную раскладку для заданных размеров.
func ComputeLayout(alienW, alienH, screenW, screenH int) Layout {
	cols, rows := FleetSize(alienW, screenW, alienH, screenH)
	xOff, yOff := FleetOffsets(alienW, alienH, screenW, screenH, cols, rows)
	return Layout{
		Cols:    cols,
		Rows:    rows,
		OffsetX: xOff,
		OffsetY: yOff,
		Cells:   CheckerboardCells(cols, rows),
	}
}

// Position возвращает координаты левого верхнего угла пришельца в клетке c.
func (l Layout) Position(c Cell, alienW, alienH int) (x, y int) {
	return alienW*c.Col + l.OffsetX, alienH*c.Row + l.OffsetY
}
