// Package combat resolves matches: team aggregation, initiative and turns.
// Nothing here logs or persists; callers own side effects.
package combat

import "github.com/KirkDiggler/skirmish/internal/entities"

// BuildTeam sums the members' stats into one aggregate and collects their
// stances in member order
func BuildTeam(members []entities.FighterStats) entities.TeamAggregate {
	team := entities.TeamAggregate{
		Overall: entities.Overall{Stance: make([]string, 0, len(members))},
		Members: make([]entities.FighterStats, len(members)),
	}
	copy(team.Members, members)

	for _, m := range members {
		team.Overall.Stats = team.Overall.Stats.Add(m.Stats)
		team.Overall.Stance = append(team.Overall.Stance, m.Stance)
	}

	return team
}
