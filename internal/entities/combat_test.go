package entities_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState() *entities.CombatState {
	finished := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &entities.CombatState{
		ID: "match-1",
		Teams: [2]entities.TeamAggregate{
			{
				Overall: entities.Overall{Stats: entities.Stats{HitPoints: 20}, Stance: []string{"Arcane"}},
				Members: []entities.FighterStats{{Name: "Vex", Stance: "Arcane"}},
			},
			{
				Overall: entities.Overall{Stats: entities.Stats{HitPoints: 30}, Stance: []string{"Martial"}},
				Members: []entities.FighterStats{{Name: "Brom", Stance: "Martial"}},
			},
		},
		FinishedAt: &finished,
		Turns:      []entities.TurnRecord{{Damage: 3}},
	}
}

func TestCombatState_CloneIsDeep(t *testing.T) {
	orig := newState()
	cp := orig.Clone()
	require.NotNil(t, cp)

	cp.Defender().Overall.HitPoints = 1
	cp.Attacker().Overall.Stance[0] = "Divine"
	cp.Attacker().Members[0].Name = "Other"
	*cp.FinishedAt = time.Time{}
	cp.Turns = append(cp.Turns, entities.TurnRecord{Damage: 9})

	assert.Equal(t, 30, orig.Defender().Overall.HitPoints)
	assert.Equal(t, "Arcane", orig.Attacker().Overall.Stance[0])
	assert.Equal(t, "Vex", orig.Attacker().Members[0].Name)
	assert.False(t, orig.FinishedAt.IsZero())
	assert.Len(t, orig.Turns, 1)
}

func TestCombatState_CloneNil(t *testing.T) {
	var state *entities.CombatState
	assert.Nil(t, state.Clone())
}

func TestCombatState_Finished(t *testing.T) {
	state := newState()
	assert.True(t, state.Finished())

	state.FinishedAt = nil
	assert.False(t, state.Finished())
}

func TestStats_Add(t *testing.T) {
	a := entities.Stats{Attack: 1, Defense: 2, Flow: 3, Reflex: 4, Dodge: 5, Initiative: 6, HitPoints: 7}
	b := entities.Stats{Attack: 10, Defense: 20, Flow: 30, Reflex: 40, Dodge: 50, Initiative: 60, HitPoints: -70}

	assert.Equal(t, entities.Stats{Attack: 11, Defense: 22, Flow: 33, Reflex: 44, Dodge: 55, Initiative: 66, HitPoints: -63}, a.Add(b))
}
