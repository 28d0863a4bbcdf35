// internal/audio/ebitenaudio/bank.go
package ebitenaudio

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"alien-invasion/internal/audio"
	"alien-invasion/internal/utils"

	"github.com/gopxl/beep"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// voice — плеер звука и время с его последнего запуска
type voice struct {
	player  *eaudio.Player
	effect  audio.Effect
	elapsed float64 // секунд с запуска, <0 — не играет
}

// Bank проигрывает звуки через аудиоконтекст ebiten. Затухание ведётся
// по кадрам в Update, поэтому Update нужно вызывать каждый кадр.
type Bank struct {
	ctx    *eaudio.Context
	voices map[audio.Sound]*voice
}

// NewBank загружает mp3 из files. Отсутствующий или битый файл заменяется
// синтезированным звуком.
func NewBank(files map[audio.Sound]string) *Bank {
	b := &Bank{
		ctx:    eaudio.NewContext(audio.SampleRate),
		voices: make(map[audio.Sound]*voice),
	}
	for _, s := range []audio.Sound{audio.SoundLaser, audio.SoundImpact} {
		data, err := loadMP3(files[s])
		if err != nil {
			log.Printf("WARNING: %s sound unavailable, using synth: %v", s, err)
			rate := beep.SampleRate(audio.SampleRate)
			data = audio.RenderPCM(audio.Synthesize(s, rate, int64(s)+1), rate.N(2*time.Second))
		}
		b.voices[s] = &voice{
			player:  b.ctx.NewPlayerFromBytes(data),
			effect:  audio.Effects[s],
			elapsed: -1,
		}
	}
	return b
}

func loadMP3(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := mp3.DecodeWithSampleRate(audio.SampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Play перезапускает звук с начала.
func (b *Bank) Play(s audio.Sound) {
	v, ok := b.voices[s]
	if !ok {
		return
	}
	if err := v.player.Rewind(); err != nil {
		log.Printf("WARNING: failed to rewind %s: %v", s, err)
		return
	}
	v.player.SetVolume(v.effect.Volume)
	v.player.Play()
	v.elapsed = 0
}

// Update ведёт затухание звуков и останавливает отыгравшие.
func (b *Bank) Update(dt float64) {
	for _, v := range b.voices {
		if v.elapsed < 0 {
			continue
		}
		v.elapsed += dt
		gain := utils.FadeGain(v.elapsed, v.effect.Fade.Seconds())
		if gain <= 0 {
			v.player.Pause()
			v.elapsed = -1
			continue
		}
		v.player.SetVolume(v.effect.Volume * gain)
	}
}
