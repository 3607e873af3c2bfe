package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

import "context"

// Roller draws named batches of dice.
// Every named value is independent and uniform in [1, sides].
type Roller interface {
	RollBatch(ctx context.Context, sides int, names []string) (map[string]int, error)
}
