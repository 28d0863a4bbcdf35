// cmd/game/main.go
package main

import (
	"log"
	"time"

	"alien-invasion/internal/app"
	"alien-invasion/internal/assets"
	"alien-invasion/internal/audio"
	"alien-invasion/internal/audio/ebitenaudio"
	"alien-invasion/internal/config"
	"alien-invasion/internal/event"
	"alien-invasion/internal/graphics"
	"alien-invasion/internal/state"
	"alien-invasion/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	game           *app.Invasion
	settings       *config.Settings
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if !a.game.Running() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.ScreenW, a.settings.ScreenH
}

func main() {
	settings, err := config.FromEnv()
	if err != nil {
		log.Printf("WARNING: using default settings: %v", err)
	}

	dispatcher := event.NewDispatcher()
	game := app.NewInvasion(settings, stats.NewStore(settings.ScoresFile), dispatcher)

	sounds := ebitenaudio.NewBank(audio.Files(settings))
	audio.NewListener(sounds).Subscribe(dispatcher)

	manager := assets.NewManager()
	manager.Load(settings)
	defer manager.Cleanup()

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, game, graphics.NewSurface(manager), sounds))

	a := &AppGame{
		stateMachine:   sm,
		game:           game,
		settings:       settings,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.ScreenW, settings.ScreenH)
	ebiten.SetWindowTitle(settings.Name)
	ebiten.SetTPS(settings.FPS)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(a); err != nil {
		game.Quit()
		log.Fatal(err)
	}
	game.Quit()
}
