// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// FadeGain — громкость затухания: 1 в начале, 0 после duration секунд.
// Нулевая длительность означает мгновенную тишину.
func FadeGain(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return Clamp(Lerp(1, 0, elapsed/duration), 0, 1)
}

// Pulse — затухающий импульс для анимации нажатия: 1+amp сразу после
// события и плавно к 1.
func Pulse(elapsed, amp, decay float64) float64 {
	if elapsed < 0 {
		return 1
	}
	return 1 + amp*math.Exp(-elapsed*decay)
}
