// internal/app/invasion.go
package app

import (
	"log"

	"alien-invasion/internal/config"
	"alien-invasion/internal/entity"
	"alien-invasion/internal/event"
	"alien-invasion/internal/input"
	"alien-invasion/internal/physics"
	"alien-invasion/internal/stats"
	"alien-invasion/internal/system"
	"alien-invasion/internal/ui"
	"alien-invasion/pkg/geom"
	"alien-invasion/pkg/render"
)

// Invasion holds the session state and runs one frame at a time:
// input -> update -> collision resolution -> level/life transitions -> draw.
type Invasion struct {
	Settings        *config.Settings
	Stats           *stats.GameStats
	Ship            *system.Ship
	Fleet           *system.AlienFleet
	EventDispatcher *event.Dispatcher
	PlayButton      *ui.Button
	HUD             *ui.HUD

	world    *physics.World
	registry *entity.Registry

	// Game state
	active   bool
	running  bool
	stunLeft float64 // секунды до конца паузы после потери жизни
	saved    bool
}

// NewInvasion initializes the session. The fleet is laid out immediately and
// stays visible behind the play button until the first start.
func NewInvasion(settings *config.Settings, store *stats.Store, dispatcher *event.Dispatcher) *Invasion {
	if settings == nil {
		panic("settings cannot be nil")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	settings.InitializeDynamicSettings()

	registry := entity.NewRegistry()
	world := physics.NewWorld(settings.ScreenW, settings.ScreenH, physics.DefaultCellSize)
	arsenal := system.NewArsenal(settings, registry, world)

	return &Invasion{
		Settings:        settings,
		Stats:           stats.NewGameStats(settings, store),
		Ship:            system.NewShip(settings, registry, world, arsenal),
		Fleet:           system.NewAlienFleet(settings, registry, world),
		EventDispatcher: dispatcher,
		PlayButton:      ui.NewButton(settings, "Play"),
		HUD:             ui.NewHUD(settings),
		world:           world,
		registry:        registry,
		running:         true,
	}
}

// Active — идёт ли раунд (false — экран с кнопкой Play).
func (g *Invasion) Active() bool { return g.active }

// Running — false после выхода.
func (g *Invasion) Running() bool { return g.running }

// Stunned — идёт пауза после потери жизни.
func (g *Invasion) Stunned() bool { return g.stunLeft > 0 }

// HandleInput applies one input event. Key presses only matter while the
// round is active, releases are always applied so no movement flag sticks.
func (g *Invasion) HandleInput(ev input.Event) {
	if !g.running {
		return
	}
	switch ev.Action {
	case input.ActionQuit:
		if ev.Pressed {
			g.Quit()
		}
	case input.ActionClick:
		if ev.Pressed && !g.active && g.PlayButton.Contains(ev.X, ev.Y) {
			g.PlayButton.Press()
			g.RestartGame()
		}
	case input.ActionRestart:
		if ev.Pressed && !g.active {
			g.PlayButton.Press()
			g.RestartGame()
		}
	case input.ActionMoveLeft, input.ActionMoveRight, input.ActionFire:
		if ev.Pressed {
			if g.active {
				g.checkKeydown(ev.Action)
			}
		} else {
			g.checkKeyup(ev.Action)
		}
	}
}

func (g *Invasion) checkKeydown(a input.Action) {
	switch a {
	case input.ActionMoveRight:
		g.Ship.MovingRight = true
	case input.ActionMoveLeft:
		g.Ship.MovingLeft = true
	case input.ActionFire:
		if g.Stunned() {
			return
		}
		if g.Ship.Fire() {
			g.EventDispatcher.Publish(event.BulletFired, nil)
		}
	}
}

func (g *Invasion) checkKeyup(a input.Action) {
	switch a {
	case input.ActionMoveRight:
		g.Ship.MovingRight = false
	case input.ActionMoveLeft:
		g.Ship.MovingLeft = false
	}
}

// Update advances the session by dt seconds of frame time.
func (g *Invasion) Update(dt float64) {
	g.PlayButton.Update(dt)
	if !g.running || !g.active {
		return
	}
	if g.stunLeft > 0 {
		g.stunLeft -= dt
		if g.stunLeft > 0 {
			return
		}
		g.stunLeft = 0
	}

	g.Ship.Update()
	g.Fleet.UpdateFleet()
	g.checkCollisions()
}

// checkCollisions resolves one frame of contacts in a fixed order:
// ship vs aliens, fleet vs bottom, projectiles vs aliens, fleet cleared.
func (g *Invasion) checkCollisions() {
	if g.Ship.CheckCollisions(g.Fleet.Fleet) {
		if !g.checkGameStatus() {
			return
		}
	}

	if g.Fleet.CheckFleetBottom() {
		if !g.checkGameStatus() {
			return
		}
	}

	if hits := g.Fleet.CheckCollisions(g.Ship.Arsenal); len(hits) > 0 {
		g.Stats.Update(len(hits))
		g.EventDispatcher.Publish(event.AliensDestroyed, event.AliensDestroyedData{
			Count: len(hits),
			Score: g.Stats.Score,
		})
	}

	// Пустая раскладка (флот не поместился) уровнем не считается
	if g.Fleet.Capacity() > 0 && g.Fleet.CheckDestroyedStatus() {
		g.resetLevel()
		g.Settings.IncreaseDifficulty()
		g.Stats.UpdateLevel()
		log.Printf("Level cleared, now level %d", g.Stats.Level)
		g.EventDispatcher.Publish(event.LevelCleared, event.LevelClearedData{Level: g.Stats.Level})
	}
}

// checkGameStatus takes one life. Returns false when the game is over.
func (g *Invasion) checkGameStatus() bool {
	if g.Stats.LoseShip() {
		g.resetLevel()
		g.Ship.CenterShip()
		g.stunLeft = g.Settings.StunDuration
		log.Printf("Ship lost, %d left", g.Stats.ShipsLeft)
		g.EventDispatcher.Publish(event.ShipLost, event.ShipLostData{ShipsLeft: g.Stats.ShipsLeft})
		return true
	}

	g.active = false
	g.stunLeft = 0
	g.Ship.MovingLeft, g.Ship.MovingRight = false, false
	log.Printf("Game over, score %d, hi-score %d", g.Stats.Score, g.Stats.HiScore)
	g.EventDispatcher.Publish(event.GameOver, event.ShipLostData{ShipsLeft: 0})
	return false
}

// resetLevel clears projectiles and aliens and builds a fresh fleet.
// Fleet direction carries over.
func (g *Invasion) resetLevel() {
	g.Ship.Arsenal.Empty()
	g.Fleet.Empty()
	g.Fleet.CreateFleet()
}

// RestartGame starts a new round from level 1 with default dynamic settings.
func (g *Invasion) RestartGame() {
	g.Settings.InitializeDynamicSettings()
	g.Stats.ResetStats()
	g.resetLevel()
	g.Fleet.ResetDirection()
	g.Ship.CenterShip()
	g.Ship.MovingLeft, g.Ship.MovingRight = false, false
	g.stunLeft = 0
	g.active = true
	g.EventDispatcher.Publish(event.GameStarted, nil)
}

// Quit stops the session and saves the hi-score. A failed save is logged only.
func (g *Invasion) Quit() {
	g.running = false
	if g.saved {
		return
	}
	g.saved = true
	if err := g.Stats.SaveScores(); err != nil {
		log.Printf("WARNING: failed to save hi-score: %v", err)
	}
}

// Draw renders the frame. The play button is drawn over everything while inactive.
func (g *Invasion) Draw(s render.Surface) {
	w, h := s.Size()
	s.Clear(config.BackgroundColor)
	s.DrawSprite(render.SpriteBackground, geom.NewRect(0, 0, float64(w), float64(h)))
	g.Ship.Draw(s)
	g.Fleet.Draw(s)
	g.HUD.Draw(s, g.Stats)

	if !g.active {
		g.PlayButton.Draw(s)
	}
}
