package events

// EventType represents the type of match event
type EventType string

// Event is the base interface for all match events
type Event interface {
	GetType() EventType
	GetMatchID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	MatchID   string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetMatchID() string { return e.MatchID }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }
