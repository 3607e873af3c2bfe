package services

import (
	"io"
	"os"
	"time"

	"github.com/KirkDiggler/skirmish/internal/clock"
	"github.com/KirkDiggler/skirmish/internal/combat"
	"github.com/KirkDiggler/skirmish/internal/dice"
	"github.com/KirkDiggler/skirmish/internal/events"
	"github.com/KirkDiggler/skirmish/internal/report"
	"github.com/KirkDiggler/skirmish/internal/repositories/matches"
	matchService "github.com/KirkDiggler/skirmish/internal/services/match"
	"github.com/KirkDiggler/skirmish/internal/skills"
	"github.com/KirkDiggler/skirmish/internal/stats"
	"github.com/KirkDiggler/skirmish/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	MatchService matchService.Service
	EventBus     *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	MatchRepository matches.Repository
	Dice            dice.Roller
	StatBuilder     stats.Builder
	Skills          combat.SkillSelector
	Reporter        report.Reporter
	ReportOutput    io.Writer // Used when Reporter is nil; defaults to stdout
	UUIDGenerator   uuid.Generator
	Clock           clock.TimeProvider
	EventBus        *events.Bus

	// Seed drives both the dice and the skill picker. 0 is time based.
	Seed           int64
	MaxTurns       int
	MaxRerolls     int
	DiceTimeout    time.Duration
	AlternateRoles bool
	LogEvents      bool
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	matchRepo := cfg.MatchRepository
	if matchRepo == nil {
		matchRepo = matches.NewInMemoryRepository()
	}

	roller := cfg.Dice
	if roller == nil {
		roller = dice.NewRandomRoller(cfg.Seed)
	}

	builder := cfg.StatBuilder
	if builder == nil {
		builder = stats.NewDefaultBuilder()
	}

	selector := cfg.Skills
	if selector == nil {
		selector = skills.NewDefaultRegistry(skills.NewRandomPicker(cfg.Seed))
	}

	reporter := cfg.Reporter
	if reporter == nil {
		out := cfg.ReportOutput
		if out == nil {
			out = os.Stdout
		}
		reporter = report.NewJSONReporter(out, "  ")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	if cfg.LogEvents {
		events.NewLoggingListener(nil).SubscribeAll(bus)
	}

	matchSvc := matchService.NewService(&matchService.ServiceConfig{
		Dice:                 roller,
		StatBuilder:          builder,
		Skills:               selector,
		Repository:           matchRepo,
		Reporter:             reporter,
		EventBus:             bus,
		UUIDGenerator:        cfg.UUIDGenerator,
		Clock:                cfg.Clock,
		MaxTurns:             cfg.MaxTurns,
		MaxInitiativeRerolls: cfg.MaxRerolls,
		DiceTimeout:          cfg.DiceTimeout,
		AlternateRoles:       cfg.AlternateRoles,
	})

	return &Provider{
		MatchService: matchSvc,
		EventBus:     bus,
	}
}
