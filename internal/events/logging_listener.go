package events

import (
	"log"
)

// LoggingListener writes a one-line summary of every match event
type LoggingListener struct {
	logger *log.Logger
}

// NewLoggingListener creates a listener that logs through logger, or the
// standard logger when nil
func NewLoggingListener(logger *log.Logger) *LoggingListener {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingListener{logger: logger}
}

// SubscribeAll registers the listener for every match event type
func (l *LoggingListener) SubscribeAll(bus *Bus) {
	for _, eventType := range AllEventTypes {
		bus.Subscribe(eventType, l)
	}
}

func (l *LoggingListener) ID() string    { return "match_logger" }
func (l *LoggingListener) Priority() int { return 1000 }

// HandleEvent implements EventListener
func (l *LoggingListener) HandleEvent(event Event) error {
	switch e := event.(type) {
	case *MatchStartedEvent:
		if e.Initiative != nil {
			l.logger.Printf("Match %s: started, initiative %d vs %d (%d rerolls), %v attacks first",
				e.MatchID, e.Initiative.Scores[0], e.Initiative.Scores[1], e.Initiative.Rerolls, e.Initiative.Winner.Stance)
			return nil
		}
		l.logger.Printf("Match %s: started", e.MatchID)
	case *TurnResolvedEvent:
		l.logger.Printf("Match %s: turn %d rolls %d/%d/%d damage %d, hp %d vs %d",
			e.MatchID, e.Index+1, e.Turn.Rolls.Skill, e.Turn.Rolls.Aim, e.Turn.Rolls.Hit,
			e.Turn.Damage, e.AttackerHP, e.DefenderHP)
	case *SkillCastEvent:
		l.logger.Printf("Match %s: turn %d cast %s (%s %d)", e.MatchID, e.TurnIndex+1, e.Cast.Skill, e.Cast.Type, e.Cast.Value)
	case *MatchFinishedEvent:
		l.logger.Printf("Match %s: finished after %d turns", e.MatchID, e.Turns)
	default:
		l.logger.Printf("Match %s: %s", event.GetMatchID(), event.GetType())
	}
	return nil
}
