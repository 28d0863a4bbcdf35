// internal/input/action.go
package input

// Action — дискретное действие игрока, независимое от устройства ввода.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionQuit
	ActionRestart // Enter
	ActionClick   // левая кнопка мыши, координаты в Event
	ActionPause
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	case ActionClick:
		return "Click"
	case ActionPause:
		return "Pause"
	default:
		return "None"
	}
}

// Event — начало (Pressed) или конец действия. X, Y заданы только для клика.
type Event struct {
	Action  Action
	Pressed bool
	X, Y    float64
}

// Press и Release — конструкторы событий без координат.
func Press(a Action) Event   { return Event{Action: a, Pressed: true} }
func Release(a Action) Event { return Event{Action: a, Pressed: false} }

// Click — нажатие мыши в точке (x, y).
func Click(x, y float64) Event {
	return Event{Action: ActionClick, Pressed: true, X: x, Y: y}
}
