// internal/state/keyboard.go
package state

import (
	"alien-invasion/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	key    ebiten.Key
	action input.Action
}

// bindings — раскладка клавиш; порядок задаёт порядок событий в кадре
var bindings = []binding{
	{ebiten.KeyArrowLeft, input.ActionMoveLeft},
	{ebiten.KeyArrowRight, input.ActionMoveRight},
	{ebiten.KeySpace, input.ActionFire},
	{ebiten.KeyQ, input.ActionQuit},
	{ebiten.KeyEnter, input.ActionRestart},
	{ebiten.KeyP, input.ActionPause},
	{ebiten.KeyEscape, input.ActionPause},
}

// pollInput собирает нажатия и отпускания за кадр.
func pollInput() []input.Event {
	var events []input.Event
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, input.Press(b.action))
		}
		if inpututil.IsKeyJustReleased(b.key) {
			events = append(events, input.Release(b.action))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, input.Click(float64(x), float64(y)))
	}
	return events
}
