// internal/audio/synth.go
package audio

import (
	"math"
	"time"

	"alien-invasion/internal/utils"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// fade — линейное затухание потока до тишины за duration, после чего поток
// заканчивается. Так же звук обрывается через fadeout у микшера.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewFade оборачивает s затуханием длиной d.
func NewFade(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(d)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	if f.position >= f.total {
		return 0, false
	}
	if rest := f.total - f.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := utils.FadeGain(float64(f.position), float64(f.total))
		samples[i][0] *= g
		samples[i][1] *= g
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// noise — белый шум из сидированного генератора
type noise struct {
	rng *utils.PRNGService
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Signed()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// newVolume задаёт линейную громкость; 0 — тишина.
// math.Log2(0) = -Inf, поэтому ноль обрабатывается отдельно.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Synthesize строит запасной звук, когда mp3 нет: лазер — два тона с
// затуханием, попадание — шум с затуханием. Громкость не применяется,
// её задаёт банк.
func Synthesize(s Sound, rate beep.SampleRate, seed int64) beep.Streamer {
	eff := Effects[s]
	switch s {
	case SoundLaser:
		hi, err := generators.SineTone(rate, 1320)
		if err != nil {
			return beep.Silence(rate.N(eff.Fade))
		}
		lo, err := generators.SineTone(rate, 660)
		if err != nil {
			return beep.Silence(rate.N(eff.Fade))
		}
		half := eff.Fade / 2
		tone := beep.Seq(beep.Take(rate.N(half), hi), beep.Take(rate.N(eff.Fade-half), lo))
		return NewFade(tone, eff.Fade, rate)
	case SoundImpact:
		return NewFade(&noise{rng: utils.NewPRNGService(seed)}, eff.Fade, rate)
	default:
		return beep.Silence(0)
	}
}

// WithVolume применяет к потоку громкость эффекта s.
func WithVolume(st beep.Streamer, s Sound) beep.Streamer {
	return newVolume(st, Effects[s].Volume)
}

// RenderPCM вычитывает поток целиком (не больше maxSamples) в 16-битный
// little-endian стерео PCM.
func RenderPCM(s beep.Streamer, maxSamples int) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*1024)
	for total := 0; total < maxSamples; {
		chunk := buf
		if rest := maxSamples - total; rest < len(chunk) {
			chunk = chunk[:rest]
		}
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(utils.Clamp(chunk[i][ch], -1, 1) * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}
