// internal/state/play_state.go
package state

import (
	"alien-invasion/internal/app"
	"alien-invasion/internal/graphics"
	"alien-invasion/internal/input"
	"alien-invasion/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Updater — то, что нужно продвигать каждый кадр помимо игры (затухание звука).
type Updater interface {
	Update(deltaTime float64)
}

var _ State = (*PlayState)(nil)

// PlayState — основное состояние: переводит ввод ebiten в события игры
// и рисует её на поверхности.
type PlayState struct {
	sm      *StateMachine
	game    *app.Invasion
	surface *graphics.Surface
	sounds  Updater
	pause   *ui.PauseButton
}

func NewPlayState(sm *StateMachine, game *app.Invasion, surface *graphics.Surface, sounds Updater) *PlayState {
	return &PlayState{sm: sm, game: game, surface: surface, sounds: sounds, pause: ui.NewPauseButton()}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	if ebiten.IsWindowBeingClosed() {
		s.game.Quit()
		return
	}

	for _, ev := range pollInput() {
		clickedPause := ev.Action == input.ActionClick && s.game.Active() && s.pause.IsClicked(ev.X, ev.Y)
		if ev.Action == input.ActionPause || clickedPause {
			if ev.Pressed && s.game.Active() {
				s.sm.SetState(NewPauseState(s.sm, s))
				return
			}
			continue
		}
		s.game.HandleInput(ev)
	}

	mx, my := ebiten.CursorPosition()
	s.game.PlayButton.Hover(float64(mx), float64(my))
	if s.game.Active() {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}

	s.pause.Update(deltaTime)
	s.game.Update(deltaTime)
	if s.sounds != nil {
		s.sounds.Update(deltaTime)
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.surface.Begin(screen)
	s.game.Draw(s.surface)
	if s.game.Active() {
		s.pause.Draw(s.surface)
	}
}

func (s *PlayState) Exit() {}
