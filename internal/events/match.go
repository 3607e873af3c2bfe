package events

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
)

// MatchStartedEvent is emitted once the match is built and initiative is known
type MatchStartedEvent struct {
	BaseEvent
	Initiative *entities.InitiativeResult
	StartedAt  time.Time
}

// TurnResolvedEvent is emitted after every committed turn
type TurnResolvedEvent struct {
	BaseEvent
	Index      int
	Turn       entities.TurnRecord
	AttackerHP int
	DefenderHP int
}

// SkillCastEvent is emitted for each cast in a turn, after TurnResolvedEvent
type SkillCastEvent struct {
	BaseEvent
	TurnIndex int
	Cast      entities.CastRecord
}

// MatchFinishedEvent is emitted when a defender drops to zero
type MatchFinishedEvent struct {
	BaseEvent
	Turns      int
	FinishedAt time.Time
}

// NewMatchStarted builds a MatchStartedEvent from state
func NewMatchStarted(state *entities.CombatState) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent:  BaseEvent{Type: EventTypeMatchStarted, MatchID: state.ID},
		Initiative: state.Initiative,
		StartedAt:  state.StartedAt,
	}
}

// NewTurnResolved builds a TurnResolvedEvent for the last turn of state
func NewTurnResolved(state *entities.CombatState) *TurnResolvedEvent {
	index := len(state.Turns) - 1
	return &TurnResolvedEvent{
		BaseEvent:  BaseEvent{Type: EventTypeTurnResolved, MatchID: state.ID},
		Index:      index,
		Turn:       state.Turns[index],
		AttackerHP: state.Attacker().Overall.HitPoints,
		DefenderHP: state.Defender().Overall.HitPoints,
	}
}

// NewSkillCast builds a SkillCastEvent
func NewSkillCast(matchID string, turnIndex int, cast entities.CastRecord) *SkillCastEvent {
	return &SkillCastEvent{
		BaseEvent: BaseEvent{Type: EventTypeSkillCast, MatchID: matchID},
		TurnIndex: turnIndex,
		Cast:      cast,
	}
}

// NewMatchFinished builds a MatchFinishedEvent. state must be finished.
func NewMatchFinished(state *entities.CombatState) *MatchFinishedEvent {
	return &MatchFinishedEvent{
		BaseEvent:  BaseEvent{Type: EventTypeMatchFinished, MatchID: state.ID},
		Turns:      len(state.Turns),
		FinishedAt: *state.FinishedAt,
	}
}
