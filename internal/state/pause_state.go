// internal/state/pause_state.go
package state

import (
	"alien-invasion/internal/input"
	"alien-invasion/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру поверх последнего кадра.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

// Enter отпускает клавиши движения: отпускание во время паузы игра не увидит.
func (s *PauseState) Enter() {
	g := s.previousState.game
	g.HandleInput(input.Release(input.ActionMoveLeft))
	g.HandleInput(input.Release(input.ActionMoveRight))
	s.previousState.pause.SetPaused(true)
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (s *PauseState) Update(deltaTime float64) {
	g := s.previousState.game
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Quit()
		return
	}
	clicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		clicked = s.previousState.pause.IsClicked(float64(x), float64(y))
	}
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	s.previousState.pause.Update(deltaTime)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	ui.DrawOverlay(s.previousState.surface, "Paused", "Press P to resume, Q to quit")
	s.previousState.pause.Draw(s.previousState.surface)
}

func (s *PauseState) Exit() {
	s.previousState.pause.SetPaused(false)
}
