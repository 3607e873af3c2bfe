package events

import "sync"

// Recorder keeps every event it receives, in order
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// SubscribeAll registers the recorder for every match event type
func (r *Recorder) SubscribeAll(bus *Bus) {
	for _, eventType := range AllEventTypes {
		bus.Subscribe(eventType, r)
	}
}

func (r *Recorder) ID() string    { return "recorder" }
func (r *Recorder) Priority() int { return 0 }

func (r *Recorder) HandleEvent(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of what was recorded
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the type of each recorded event
func (r *Recorder) Types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.GetType()
	}
	return out
}
