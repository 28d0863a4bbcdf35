// internal/input/hold.go
package input

import (
	"sort"
	"time"
)

// DefaultHoldWindow — сколько клавиша считается зажатой после последнего
// повтора. Чуть больше типичного интервала автоповтора терминала.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker превращает поток нажатий без отпусканий (как в терминале)
// в пары Press/Release: отпускание генерируется, когда повторы прекратились.
type HoldTracker struct {
	window time.Duration
	last   map[Action]time.Time
}

func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window, last: make(map[Action]time.Time)}
}

// Key регистрирует повтор клавиши a. Возвращает Press, если клавиша
// только что стала зажатой, иначе ok == false.
func (h *HoldTracker) Key(a Action, now time.Time) (Event, bool) {
	_, held := h.last[a]
	h.last[a] = now
	if held {
		return Event{}, false
	}
	return Press(a), true
}

// Expire возвращает Release для клавиш, повторов которых не было дольше окна.
func (h *HoldTracker) Expire(now time.Time) []Event {
	var out []Event
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			out = append(out, Release(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

// Held — зажата ли сейчас клавиша a.
func (h *HoldTracker) Held(a Action) bool {
	_, ok := h.last[a]
	return ok
}
