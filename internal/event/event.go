// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // полезная нагрузка, см. types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

type funcListener struct {
	fn func(Event)
}

func (l *funcListener) OnEvent(e Event) { l.fn(e) }

// ListenerFunc оборачивает функцию в Listener. Каждый вызов даёт нового
// подписчика, поэтому для отписки нужно сохранить результат.
func ListenerFunc(fn func(Event)) Listener {
	return &funcListener{fn: fn}
}

// Dispatcher — синхронный диспетчер событий. Подписчики вызываются
// в порядке подписки в той же горутине, что и Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на одно или несколько событий
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Publish — сокращение для Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Publish(t EventType, data interface{}) {
	d.Dispatch(Event{Type: t, Data: data})
}

// ListenerCount — число подписчиков события t.
func (d *Dispatcher) ListenerCount(t EventType) int {
	return len(d.listeners[t])
}
