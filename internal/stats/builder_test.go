package stats_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBuilder_Build(t *testing.T) {
	builder := stats.NewDefaultBuilder()

	got, err := builder.Build(context.Background(), &entities.RawFighter{
		Name:   "Vex",
		Stance: "Arcane",
		Str:    12,
		Int:    14,
		Ref:    8,
		Acc:    11,
		Con:    9,
		Kno:    17,
	})
	require.NoError(t, err)

	assert.Equal(t, &entities.FighterStats{
		Name:   "Vex",
		Stance: "Arcane",
		Stats: entities.Stats{
			Attack:     12,
			Defense:    9,
			Flow:       15,
			Reflex:     11,
			Dodge:      8,
			Initiative: 11,
			HitPoints:  30,
		},
	}, got)
}

func TestDefaultBuilder_DemoFighter(t *testing.T) {
	got, err := stats.NewDefaultBuilder().Build(context.Background(), &entities.RawFighter{
		Stance: "Arcane", Str: 10, Int: 10, Ref: 10, Acc: 10, Con: 10, Kno: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.Stats{
		Attack: 10, Defense: 10, Flow: 10, Reflex: 10, Dodge: 10, Initiative: 10, HitPoints: 30,
	}, got.Stats)
}

func TestDefaultBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		fighter *entities.RawFighter
		wantMsg string
	}{
		{"nil", nil, "fighter is required"},
		{"no stance", &entities.RawFighter{Name: "Vex", Str: 1}, "stance is required"},
		{"blank stance", &entities.RawFighter{Stance: "  "}, "stance is required"},
		{"negative", &entities.RawFighter{Name: "Vex", Stance: "Arcane", Con: -1}, "con must be between 0 and 100, got -1"},
		{"too high", &entities.RawFighter{Stance: "Arcane", Kno: 101}, "unnamed fighter: kno must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stats.NewDefaultBuilder().Build(context.Background(), tt.fighter)
			require.Error(t, err)
			assert.ErrorIs(t, err, internal.ErrStatBuild)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDefaultBuilder_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stats.NewDefaultBuilder().Build(ctx, &entities.RawFighter{Stance: "Arcane"})
	assert.ErrorIs(t, err, context.Canceled)
}
