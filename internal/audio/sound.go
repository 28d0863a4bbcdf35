// internal/audio/sound.go
package audio

import (
	"time"

	"alien-invasion/internal/config"
	"alien-invasion/internal/event"
)

// SampleRate — частота дискретизации всех банков звука
const SampleRate = 44100

// Sound — идентификатор звукового эффекта
type Sound int

const (
	SoundLaser Sound = iota
	SoundImpact
)

func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundImpact:
		return "impact"
	default:
		return "unknown"
	}
}

// Effect — параметры воспроизведения: громкость и затухание после старта.
type Effect struct {
	Volume float64
	Fade   time.Duration
}

// Effects — громкость и затухание для каждого звука
var Effects = map[Sound]Effect{
	SoundLaser:  {Volume: config.LaserVolume, Fade: config.LaserFadeMillis * time.Millisecond},
	SoundImpact: {Volume: config.ImpactVolume, Fade: config.ImpactFadeMillis * time.Millisecond},
}

// Files возвращает путь к mp3 для каждого звука.
func Files(settings *config.Settings) map[Sound]string {
	return map[Sound]string{
		SoundLaser:  settings.LaserSound,
		SoundImpact: settings.ImpactSound,
	}
}

// Player — всё, что умеет проиграть звук «выстрелил и забыл».
type Player interface {
	Play(s Sound)
}

// Listener переводит игровые события в звуки.
type Listener struct {
	player Player
}

func NewListener(p Player) *Listener {
	return &Listener{player: p}
}

// Subscribe подписывает слушателя на события выстрела и попадания.
func (l *Listener) Subscribe(d *event.Dispatcher) {
	d.Subscribe(l, event.BulletFired, event.AliensDestroyed)
}

func (l *Listener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BulletFired:
		l.player.Play(SoundLaser)
	case event.AliensDestroyed:
		l.player.Play(SoundImpact)
	}
}
