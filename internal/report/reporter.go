package report

//go:generate mockgen -destination=mock/mock_reporter.go -package=mockreport -source=reporter.go

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/entities"
)

// Reporter receives the turn log of a finished match
type Reporter interface {
	Report(ctx context.Context, state *entities.CombatState) error
}

// TurnLog is the document written for a finished match
type TurnLog struct {
	MatchID    string                     `json:"match_id"`
	Initiative *entities.InitiativeResult `json:"initiative,omitempty"`
	StartedAt  time.Time                  `json:"started_at"`
	FinishedAt *time.Time                 `json:"finished_at"`
	Turns      []entities.TurnRecord      `json:"turns"`
}

// NewTurnLog extracts the log document from state
func NewTurnLog(state *entities.CombatState) *TurnLog {
	return &TurnLog{
		MatchID:    state.ID,
		Initiative: state.Initiative,
		StartedAt:  state.StartedAt,
		FinishedAt: state.FinishedAt,
		Turns:      state.Turns,
	}
}

// JSONReporter writes indented JSON turn logs to a writer
type JSONReporter struct {
	mu     sync.Mutex
	w      io.Writer
	indent string
}

// NewJSONReporter creates a JSONReporter. An empty indent writes one
// compact document per line.
func NewJSONReporter(w io.Writer, indent string) *JSONReporter {
	if w == nil {
		panic("writer is required")
	}
	return &JSONReporter{w: w, indent: indent}
}

// Report implements Reporter
func (r *JSONReporter) Report(ctx context.Context, state *entities.CombatState) error {
	if state == nil {
		return internal.NewMissingParamError("combat state")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	enc := json.NewEncoder(r.w)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(NewTurnLog(state)); err != nil {
		return fmt.Errorf("failed to write turn log for match %s: %w", state.ID, err)
	}

	return nil
}
