package events

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	id       string
	priority int
	fn       func(Event) error
}

// NewListenerFunc wraps fn as a listener
func NewListenerFunc(id string, priority int, fn func(Event) error) *ListenerFunc {
	return &ListenerFunc{id: id, priority: priority, fn: fn}
}

func (l *ListenerFunc) ID() string                    { return l.id }
func (l *ListenerFunc) Priority() int                 { return l.priority }
func (l *ListenerFunc) HandleEvent(event Event) error { return l.fn(event) }

// Bus fans match events out to listeners. Listeners run synchronously on
// the emitting goroutine, lowest priority value first; equal priorities
// run in subscription order.
type Bus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds listener for eventType. A listener with the same ID is
// replaced, so subscribing twice does not deliver twice.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.without(eventType, listener.ID())
	at := sort.Search(len(current), func(i int) bool {
		return current[i].Priority() > listener.Priority()
	})

	next := make([]EventListener, 0, len(current)+1)
	next = append(next, current[:at]...)
	next = append(next, listener)
	next = append(next, current[at:]...)
	b.listeners[eventType] = next
}

// Unsubscribe removes the listener with listenerID from eventType
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	remaining := b.without(eventType, listenerID)
	if len(remaining) == 0 {
		delete(b.listeners, eventType)
		return
	}
	b.listeners[eventType] = remaining
}

// without returns a fresh slice of the listeners for eventType minus id.
// Callers hold the write lock.
func (b *Bus) without(eventType EventType, id string) []EventListener {
	out := make([]EventListener, 0, len(b.listeners[eventType]))
	for _, l := range b.listeners[eventType] {
		if l.ID() != id {
			out = append(out, l)
		}
	}
	return out
}

// Emit delivers event to its listeners. A failing listener does not stop
// the others; all failures are returned joined. Cancelling the event stops
// delivery to lower ranked listeners.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := b.listeners[event.GetType()]
	b.mu.RUnlock()

	var errs []error
	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s for match %s cancelled, stopping propagation", event.GetType(), event.GetMatchID())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			errs = append(errs, fmt.Errorf("listener %s failed on %s: %w", listener.ID(), event.GetType(), err))
		}
	}

	return errors.Join(errs...)
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}
