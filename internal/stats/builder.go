package stats

//go:generate mockgen -destination=mock/mock_builder.go -package=mockstats -source=builder.go

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/entities"
)

// MaxAttribute is the highest accepted raw attribute value
const MaxAttribute = 100

// Builder turns a raw fighter into combat stats
type Builder interface {
	Build(ctx context.Context, raw *entities.RawFighter) (*entities.FighterStats, error)
}

type defaultBuilder struct{}

// NewDefaultBuilder returns the standard attribute-to-stat conversion
func NewDefaultBuilder() Builder {
	return &defaultBuilder{}
}

// Build implements Builder.Build
//
//	attack     = str
//	defense    = con
//	flow       = (int + kno) / 2
//	reflex     = acc
//	dodge      = ref
//	initiative = (ref + int) / 2
//	hit points = 2*con + str
func (b *defaultBuilder) Build(ctx context.Context, raw *entities.RawFighter) (*entities.FighterStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Validate(raw); err != nil {
		return nil, err
	}

	return &entities.FighterStats{
		Name:   raw.Name,
		Stance: raw.Stance,
		Stats: entities.Stats{
			Attack:     raw.Str,
			Defense:    raw.Con,
			Flow:       (raw.Int + raw.Kno) / 2,
			Reflex:     raw.Acc,
			Dodge:      raw.Ref,
			Initiative: (raw.Ref + raw.Int) / 2,
			HitPoints:  2*raw.Con + raw.Str,
		},
	}, nil
}

// Validate rejects fighters the builder cannot convert
func Validate(raw *entities.RawFighter) error {
	if raw == nil {
		return internal.NewStatBuildError("<nil>", "fighter is required")
	}

	label := raw.Name
	if label == "" {
		label = "unnamed fighter"
	}

	if strings.TrimSpace(raw.Stance) == "" {
		return internal.NewStatBuildError(label, "stance is required")
	}

	attrs := []struct {
		key   string
		value int
	}{
		{"str", raw.Str},
		{"int", raw.Int},
		{"ref", raw.Ref},
		{"acc", raw.Acc},
		{"con", raw.Con},
		{"kno", raw.Kno},
	}
	for _, a := range attrs {
		if a.value < 0 || a.value > MaxAttribute {
			return internal.NewStatBuildError(label, fmt.Sprintf("%s must be between 0 and %d, got %d", a.key, MaxAttribute, a.value))
		}
	}

	return nil
}
