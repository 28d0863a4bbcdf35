// cmd/game_term/main.go
package main

import (
	"log"

	"alien-invasion/internal/app"
	"alien-invasion/internal/audio"
	"alien-invasion/internal/audio/beepaudio"
	"alien-invasion/internal/config"
	"alien-invasion/internal/event"
	"alien-invasion/internal/stats"
	"alien-invasion/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

// Терминальная версия: та же игра, отрисовка символами через tcell,
// звук через динамик beep.
func main() {
	settings, err := config.FromEnv()
	if err != nil {
		log.Printf("WARNING: using default settings: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	restoreLog, err := terminal.RedirectLog(config.GetEnv(config.EnvLogFile, ""))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	game := app.NewInvasion(settings, stats.NewStore(settings.ScoresFile), dispatcher)

	sounds := beepaudio.NewBank(audio.Files(settings))
	if err := sounds.Init(); err != nil {
		log.Printf("WARNING: audio disabled: %v", err)
	} else {
		defer sounds.Close()
	}
	audio.NewListener(sounds).Subscribe(dispatcher)

	terminal.NewLoop(screen, game).Run(settings.FPS)
	game.Quit()
	screen.Fini()
	restoreLog()
}
