package match

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/clock"
	"github.com/KirkDiggler/skirmish/internal/combat"
	"github.com/KirkDiggler/skirmish/internal/dice"
	"github.com/KirkDiggler/skirmish/internal/entities"
	skerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/report"
	"github.com/KirkDiggler/skirmish/internal/repositories/matches"
	"github.com/KirkDiggler/skirmish/internal/stats"
	"github.com/KirkDiggler/skirmish/internal/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxTurns bounds a match that cannot finish
	DefaultMaxTurns = 1000

	// DefaultDiceTimeout bounds a single batch draw
	DefaultDiceTimeout = 5 * time.Second
)

// Repository is an alias for the match repository interface
type Repository = matches.Repository

// Service runs matches between two teams
type Service interface {
	// Build turns raw fighters into a ready match with initiative resolved
	Build(ctx context.Context, input *BuildInput) (*entities.CombatState, error)

	// Start runs turns until one team is defeated and reports the turn log
	Start(ctx context.Context, state *entities.CombatState) (*entities.CombatState, error)

	// Create builds and starts a match
	Create(ctx context.Context, input *BuildInput) (*entities.CombatState, error)

	// Get retrieves the last checkpoint of a match
	Get(ctx context.Context, matchID string) (*entities.CombatState, error)
}

// BuildInput holds the raw fighters of both teams
type BuildInput struct {
	Teams [2][]*entities.RawFighter
}

type service struct {
	dice          dice.Roller
	statBuilder   stats.Builder
	engine        *combat.Engine
	repository    Repository
	reporter      report.Reporter
	eventBus      *events.Bus
	uuidGenerator uuid.Generator
	clock         clock.TimeProvider
	maxTurns      int
	maxRerolls    int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Dice                 dice.Roller          // Required
	StatBuilder          stats.Builder        // Required
	Skills               combat.SkillSelector // Required
	Repository           Repository           // Required
	Reporter             report.Reporter      // Required
	EventBus             *events.Bus          // Optional
	UUIDGenerator        uuid.Generator       // Optional, will use default if nil
	Clock                clock.TimeProvider   // Optional, will use default if nil
	MaxTurns             int                  // Optional, DefaultMaxTurns when 0
	MaxInitiativeRerolls int                  // Optional, combat.DefaultMaxRerolls when 0
	DiceTimeout          time.Duration        // Optional, DefaultDiceTimeout when 0, unbounded when negative
	AlternateRoles       bool                 // Swap attacker and defender after every turn
}

// NewService creates a new match service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Dice == nil {
		panic("dice roller is required")
	}
	if cfg.StatBuilder == nil {
		panic("stat builder is required")
	}
	if cfg.Skills == nil {
		panic("skill selector is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Reporter == nil {
		panic("reporter is required")
	}

	svc := &service{
		statBuilder: cfg.StatBuilder,
		repository:  cfg.Repository,
		reporter:    cfg.Reporter,
		eventBus:    cfg.EventBus,
		maxTurns:    cfg.MaxTurns,
		maxRerolls:  cfg.MaxInitiativeRerolls,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	if cfg.Clock != nil {
		svc.clock = cfg.Clock
	} else {
		svc.clock = clock.New()
	}

	if svc.maxTurns <= 0 {
		svc.maxTurns = DefaultMaxTurns
	}
	if svc.maxRerolls <= 0 {
		svc.maxRerolls = combat.DefaultMaxRerolls
	}

	timeout := cfg.DiceTimeout
	if timeout == 0 {
		timeout = DefaultDiceTimeout
	}
	svc.dice = dice.NewTimeoutRoller(cfg.Dice, timeout)

	svc.engine = combat.NewEngine(&combat.EngineConfig{
		Skills:         cfg.Skills,
		Clock:          svc.clock,
		AlternateRoles: cfg.AlternateRoles,
	})

	return svc
}

// Build creates a match from raw fighters. Nothing is aggregated unless
// every fighter builds.
func (s *service) Build(ctx context.Context, input *BuildInput) (*entities.CombatState, error) {
	if input == nil {
		return nil, skerr.InvalidArgument("input cannot be nil")
	}

	built, err := s.buildFighters(ctx, input.Teams)
	if err != nil {
		return nil, skerr.Wrap(err, "failed to build fighters")
	}

	teams := [2]entities.TeamAggregate{
		combat.BuildTeam(built[0]),
		combat.BuildTeam(built[1]),
	}

	ordered, initiative, err := combat.ResolveInitiative(ctx, s.dice, teams, s.maxRerolls)
	if err != nil {
		return nil, skerr.Wrap(err, "failed to resolve initiative")
	}

	state := &entities.CombatState{
		ID:         s.uuidGenerator.New(),
		Teams:      ordered,
		Initiative: initiative,
		StartedAt:  s.clock.Now(),
		Turns:      []entities.TurnRecord{},
	}

	if err := s.repository.Create(ctx, state); err != nil {
		return nil, skerr.Wrap(err, "failed to create match").
			WithMeta("match_id", state.ID)
	}

	log.Printf("Match %s: built, %d vs %d fighters", state.ID, len(built[0]), len(built[1]))
	s.emit(events.NewMatchStarted(state))

	return state, nil
}

// buildFighters converts every raw fighter concurrently. Results keep
// input order.
func (s *service) buildFighters(ctx context.Context, teams [2][]*entities.RawFighter) ([2][]entities.FighterStats, error) {
	var built [2][]entities.FighterStats
	g, gctx := errgroup.WithContext(ctx)

	for t := range teams {
		built[t] = make([]entities.FighterStats, len(teams[t]))
		for i, raw := range teams[t] {
			label := fighterLabel(t, i, raw)
			g.Go(func() error {
				if raw == nil {
					return internal.NewStatBuildError(label, "missing fighter")
				}
				fighter, err := s.statBuilder.Build(gctx, raw)
				if err != nil {
					return asStatBuildError(ctx, label, err)
				}
				if fighter == nil {
					return internal.NewStatBuildError(label, "builder returned no stats")
				}
				built[t][i] = *fighter
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return built, err
	}
	return built, nil
}

func fighterLabel(team, index int, raw *entities.RawFighter) string {
	if raw != nil && strings.TrimSpace(raw.Name) != "" {
		return raw.Name
	}
	return fmt.Sprintf("team%d[%d]", team+1, index)
}

// asStatBuildError keeps cancellation of the caller's context visible and
// classifies everything else as a stat build failure
func asStatBuildError(ctx context.Context, label string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, internal.ErrStatBuild) {
		return err
	}
	return internal.NewStatBuildError(label, err.Error())
}

// Start runs the turn loop from state. Each committed turn is checkpointed,
// so on failure the repository holds the last good state.
func (s *service) Start(ctx context.Context, state *entities.CombatState) (*entities.CombatState, error) {
	if state == nil {
		return nil, skerr.InvalidArgument("state cannot be nil")
	}
	if state.Finished() {
		return nil, skerr.InvalidArgumentf("match '%s' already finished", state.ID)
	}

	current := state
	for !current.Finished() {
		if err := ctx.Err(); err != nil {
			return current, skerr.Wrapf(err, "match '%s' canceled", current.ID).
				WithMeta("turns", len(current.Turns))
		}
		if len(current.Turns) >= s.maxTurns {
			return current, skerr.Wrapf(internal.NewTurnLimitError(s.maxTurns), "match '%s' did not finish", current.ID).
				WithMeta("match_id", current.ID)
		}

		rolls, err := s.rollTurn(ctx)
		if err != nil {
			return current, skerr.Wrapf(err, "failed to roll turn %d", len(current.Turns)).
				WithMeta("match_id", current.ID)
		}

		next, err := s.engine.RunTurn(current, rolls)
		if err != nil {
			return current, skerr.Wrapf(err, "failed to run turn %d", len(current.Turns)).
				WithMeta("match_id", current.ID)
		}

		if err := s.repository.Update(ctx, next); err != nil {
			return current, skerr.Wrap(err, "failed to checkpoint match").
				WithMeta("match_id", current.ID)
		}
		current = next

		s.emitTurn(current)
	}

	log.Printf("Match %s: finished after %d turns", current.ID, len(current.Turns))
	s.emit(events.NewMatchFinished(current))

	if err := s.reporter.Report(ctx, current); err != nil {
		return current, skerr.Wrap(err, "failed to report match").
			WithMeta("match_id", current.ID)
	}

	return current, nil
}

func (s *service) rollTurn(ctx context.Context) (entities.TurnRolls, error) {
	values, err := s.dice.RollBatch(ctx, 20, combat.TurnRollNames)
	if err != nil {
		return entities.TurnRolls{}, err
	}

	return entities.TurnRolls{
		Skill: values["skill"],
		Aim:   values["aim"],
		Hit:   values["hit"],
	}, nil
}

// Create builds and runs a match
func (s *service) Create(ctx context.Context, input *BuildInput) (*entities.CombatState, error) {
	state, err := s.Build(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.Start(ctx, state)
}

// Get retrieves a match by ID
func (s *service) Get(ctx context.Context, matchID string) (*entities.CombatState, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, skerr.InvalidArgument("match ID is required")
	}

	state, err := s.repository.Get(ctx, matchID)
	if err != nil {
		return nil, skerr.Wrapf(err, "failed to get match '%s'", matchID).
			WithMeta("match_id", matchID)
	}

	return state, nil
}

func (s *service) emitTurn(state *entities.CombatState) {
	if s.eventBus == nil {
		return
	}

	index := len(state.Turns) - 1
	s.emit(events.NewTurnResolved(state))
	for _, cast := range state.Turns[index].Casts {
		s.emit(events.NewSkillCast(state.ID, index, cast))
	}
}

// emit publishes to the bus. Listener failures are logged and never stop
// the match.
func (s *service) emit(event events.Event) {
	if s.eventBus == nil {
		return
	}

	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("Match %s: %s listener error: %v", event.GetMatchID(), event.GetType(), err)
	}
}
