package testutils

import (
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
)

// CreateTestRawFighter creates a raw fighter with every attribute set to score
func CreateTestRawFighter(stance string, score int) *entities.RawFighter {
	return &entities.RawFighter{
		Stance: stance,
		Str:    score,
		Int:    score,
		Ref:    score,
		Acc:    score,
		Con:    score,
		Kno:    score,
	}
}

// CreateTestFighter creates derived fighter stats with uniform values
func CreateTestFighter(name, stance string, value, hp int) entities.FighterStats {
	return entities.FighterStats{
		Name:   name,
		Stance: stance,
		Stats: entities.Stats{
			Attack:     value,
			Defense:    value,
			Flow:       value,
			Reflex:     value,
			Dodge:      value,
			Initiative: value,
			HitPoints:  hp,
		},
	}
}

// CreateTestTeam creates a single-member team
func CreateTestTeam(member entities.FighterStats) entities.TeamAggregate {
	return entities.TeamAggregate{
		Overall: entities.Overall{Stats: member.Stats, Stance: []string{member.Stance}},
		Members: []entities.FighterStats{member},
	}
}

// CreateTestMatch creates a started match with no turns
func CreateTestMatch(id string, started time.Time) *entities.CombatState {
	return &entities.CombatState{
		ID: id,
		Teams: [2]entities.TeamAggregate{
			CreateTestTeam(CreateTestFighter("Vex", "Arcane", 10, 30)),
			CreateTestTeam(CreateTestFighter("Orrin", "Arcane", 10, 30)),
		},
		StartedAt: started,
		Initiative: &entities.InitiativeResult{
			Winner: entities.Overall{Stance: []string{"Arcane"}},
			Rolls:  map[string]int{"team1": 12, "team2": 4},
			Scores: [2]int{22, 14},
		},
		Turns: []entities.TurnRecord{},
	}
}

// AppendTestTurn appends a landed fireball turn and returns state
func AppendTestTurn(state *entities.CombatState, damage int) *entities.CombatState {
	state.Turns = append(state.Turns, entities.TurnRecord{
		Attacker: state.Teams[0].Overall.Clone(),
		Defender: state.Teams[1].Overall.Clone(),
		Damage:   damage,
		Rolls:    entities.TurnRolls{Skill: 15, Aim: 15, Hit: 15},
		Casts:    []entities.CastRecord{{Skill: "fireball", Type: entities.EffectDamage, Value: 5}},
	})
	state.Teams[1].Overall.HitPoints -= damage + 5
	return state
}
