package events

// Event type constants
const (
	EventTypeMatchStarted  EventType = "match_started"
	EventTypeTurnResolved  EventType = "turn_resolved"
	EventTypeSkillCast     EventType = "skill_cast"
	EventTypeMatchFinished EventType = "match_finished"
)

// AllEventTypes lists every event a match emits, in emission order
var AllEventTypes = []EventType{
	EventTypeMatchStarted,
	EventTypeTurnResolved,
	EventTypeSkillCast,
	EventTypeMatchFinished,
}
