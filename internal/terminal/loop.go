// internal/terminal/loop.go
package terminal

import (
	"time"

	"alien-invasion/internal/app"
	"alien-invasion/internal/config"
	"alien-invasion/internal/input"
	"alien-invasion/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// Loop ведёт игру в терминале: события tcell -> действия, тик -> кадр.
type Loop struct {
	screen  tcell.Screen
	game    *app.Invasion
	surface *Surface
	holds   *input.HoldTracker
	pause   *ui.PauseButton
	paused  bool
}

func NewLoop(screen tcell.Screen, game *app.Invasion) *Loop {
	return &Loop{
		screen:  screen,
		game:    game,
		surface: NewSurface(screen, game.Settings.ScreenW, game.Settings.ScreenH),
		holds:   input.NewHoldTracker(input.DefaultHoldWindow),
		pause:   ui.NewPauseButton(),
	}
}

// Paused — открыт ли экран паузы.
func (l *Loop) Paused() bool { return l.paused }

// HandleEvent обрабатывает одно событие терминала.
func (l *Loop) HandleEvent(ev tcell.Event, now time.Time) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		l.screen.Sync()
	case *tcell.EventMouse:
		if e.Buttons()&tcell.Button1 != 0 {
			x, y := l.surface.FromCell(e.Position())
			l.handleClick(x, y)
		}
	case *tcell.EventKey:
		a, ok := MapKey(e)
		if !ok {
			return
		}
		l.handleAction(a, now)
	}
}

func (l *Loop) handleAction(a input.Action, now time.Time) {
	switch {
	case a == input.ActionPause:
		l.togglePause()
	case l.paused && a != input.ActionQuit:
		return
	case held(a):
		if ev, ok := l.holds.Key(a, now); ok {
			l.game.HandleInput(ev)
		}
	default:
		l.game.HandleInput(input.Press(a))
	}
}

func (l *Loop) handleClick(x, y float64) {
	if (l.paused || l.game.Active()) && l.pause.IsClicked(x, y) {
		l.togglePause()
		return
	}
	if !l.paused {
		l.game.HandleInput(input.Click(x, y))
	}
}

func (l *Loop) togglePause() {
	if l.paused {
		l.paused = false
		l.pause.SetPaused(false)
		return
	}
	if !l.game.Active() {
		return
	}
	l.paused = true
	l.pause.SetPaused(true)
	for _, a := range []input.Action{input.ActionMoveLeft, input.ActionMoveRight, input.ActionFire} {
		if l.holds.Held(a) {
			l.game.HandleInput(input.Release(a))
		}
	}
	l.holds = input.NewHoldTracker(input.DefaultHoldWindow)
}

// Tick продвигает игру на dt и рисует кадр.
func (l *Loop) Tick(dt float64, now time.Time) {
	for _, ev := range l.holds.Expire(now) {
		l.game.HandleInput(ev)
	}
	l.pause.Update(dt)
	if !l.paused {
		l.game.Update(dt)
	}
	l.Draw()
}

func (l *Loop) Draw() {
	l.game.Draw(l.surface)
	if l.paused {
		ui.DrawOverlay(l.surface, "Paused", "P to resume, Q to quit")
	}
	if l.paused || l.game.Active() {
		l.pause.Draw(l.surface)
	}
	l.surface.Show()
}

// Run крутит цикл, пока игра не завершится. PollEvent блокирует, поэтому
// события читаются в отдельной горутине, а состояние игры трогает только этот цикл.
func (l *Loop) Run(fps int) {
	if fps <= 0 {
		fps = config.FPS
	}
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()

	last := time.Now()
	for l.game.Running() {
		select {
		case ev, ok := <-events:
			if !ok {
				l.game.Quit()
				return
			}
			l.HandleEvent(ev, time.Now())
		case now := <-tick.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			l.Tick(dt, now)
		}
	}
}
