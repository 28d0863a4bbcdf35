// internal/terminal/keys.go
package terminal

import (
	"alien-invasion/internal/input"

	"github.com/gdamore/tcell/v2"
)

// MapKey переводит клавишу терминала в действие игры.
func MapKey(e *tcell.EventKey) (input.Action, bool) {
	switch e.Key() {
	case tcell.KeyLeft:
		return input.ActionMoveLeft, true
	case tcell.KeyRight:
		return input.ActionMoveRight, true
	case tcell.KeyEnter:
		return input.ActionRestart, true
	case tcell.KeyEscape:
		return input.ActionPause, true
	case tcell.KeyCtrlC:
		return input.ActionQuit, true
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ':
			return input.ActionFire, true
		case 'q', 'Q':
			return input.ActionQuit, true
		case 'p', 'P':
			return input.ActionPause, true
		case 'a', 'A':
			return input.ActionMoveLeft, true
		case 'd', 'D':
			return input.ActionMoveRight, true
		}
	}
	return input.ActionNone, false
}

// held — действия, для которых терминал шлёт автоповтор вместо отпускания
func held(a input.Action) bool {
	return a == input.ActionMoveLeft || a == input.ActionMoveRight || a == input.ActionFire
}
