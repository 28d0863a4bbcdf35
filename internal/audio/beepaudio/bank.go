// internal/audio/beepaudio/bank.go
package beepaudio

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"alien-invasion/internal/audio"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

const rate = beep.SampleRate(audio.SampleRate)

// Bank проигрывает звуки через динамик beep. Звуки целиком лежат в памяти,
// каждый запуск — новый поток из буфера с затуханием и громкостью.
type Bank struct {
	mu          sync.Mutex
	buffers     map[audio.Sound]*beep.Buffer
	mixer       *beep.Mixer
	initialized bool
}

func NewBank(files map[audio.Sound]string) *Bank {
	b := &Bank{
		buffers: make(map[audio.Sound]*beep.Buffer),
		mixer:   &beep.Mixer{},
	}
	for _, s := range []audio.Sound{audio.SoundLaser, audio.SoundImpact} {
		buf, err := loadMP3(files[s])
		if err != nil {
			log.Printf("WARNING: %s sound unavailable, using synth: %v", s, err)
			buf = beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
			buf.Append(audio.Synthesize(s, rate, int64(s)+1))
		}
		b.buffers[s] = buf
	}
	return b
}

func loadMP3(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	if format.SampleRate == rate {
		buf.Append(stream)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, rate, stream))
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf, nil
}

// Init открывает устройство вывода. Без Init звуки молча пропускаются.
func (b *Bank) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play запускает звук поверх уже играющих.
func (b *Bank) Play(s audio.Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers[s]
	if !ok || !b.initialized {
		return
	}
	st := audio.NewFade(buf.Streamer(0, buf.Len()), audio.Effects[s].Fade, rate)
	speaker.Lock()
	b.mixer.Add(audio.WithVolume(st, s))
	speaker.Unlock()
}

// Close гасит все звуки.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}
