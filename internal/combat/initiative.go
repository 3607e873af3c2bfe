package combat

import (
	"context"
	"errors"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/dice"
	"github.com/KirkDiggler/skirmish/internal/entities"
)

// DefaultMaxRerolls bounds initiative re-rolls on ties
const DefaultMaxRerolls = 100

var initiativeRolls = []string{"team1", "team2"}

// ResolveInitiative orders the teams so the higher d20 + initiative score
// attacks first. Ties are re-rolled up to maxRerolls times.
func ResolveInitiative(ctx context.Context, roller dice.Roller, teams [2]entities.TeamAggregate, maxRerolls int) ([2]entities.TeamAggregate, *entities.InitiativeResult, error) {
	if maxRerolls <= 0 {
		maxRerolls = DefaultMaxRerolls
	}

	for attempt := 0; attempt <= maxRerolls; attempt++ {
		rolls, err := roller.RollBatch(ctx, 20, initiativeRolls)
		if err != nil {
			return teams, nil, asDiceError(err, "rolling initiative")
		}

		scores := [2]int{
			rolls["team1"] + teams[0].Overall.Initiative,
			rolls["team2"] + teams[1].Overall.Initiative,
		}
		if scores[0] == scores[1] {
			continue
		}

		result := &entities.InitiativeResult{
			Rolls:   rolls,
			Scores:  scores,
			Rerolls: attempt,
		}
		if scores[0] < scores[1] {
			teams[0], teams[1] = teams[1], teams[0]
			result.Scores = [2]int{scores[1], scores[0]}
		}
		result.Winner = teams[0].Overall.Clone()

		return teams, result, nil
	}

	return teams, nil, internal.NewInitiativeDeadlockError(maxRerolls + 1)
}

func asDiceError(err error, what string) error {
	if errors.Is(err, internal.ErrTransientDice) {
		return err
	}
	return internal.NewTransientDiceError(what, err)
}
