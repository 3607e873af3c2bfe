package skills_test

import (
	"testing"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func combatState(attacker, defender entities.Stats) *entities.CombatState {
	return &entities.CombatState{
		Teams: [2]entities.TeamAggregate{
			{Overall: entities.Overall{Stats: attacker, Stance: []string{"Arcane"}}},
			{Overall: entities.Overall{Stats: defender, Stance: []string{"Martial"}}},
		},
	}
}

func TestSkill_Fire(t *testing.T) {
	tests := []struct {
		name          string
		kind          skills.Kind
		attacker      entities.Stats
		defender      entities.Stats
		wantCast      entities.CastRecord
		wantAttackerH int
		wantDefenderH int
	}{
		{
			name:          "fireball hits attack minus half defense",
			kind:          skills.KindFireball,
			attacker:      entities.Stats{Attack: 10, HitPoints: 30},
			defender:      entities.Stats{Defense: 10, HitPoints: 30},
			wantCast:      entities.CastRecord{Skill: "fireball", Type: entities.EffectDamage, Value: 5},
			wantAttackerH: 30,
			wantDefenderH: 25,
		},
		{
			name:          "fireball never heals the defender",
			kind:          skills.KindFireball,
			attacker:      entities.Stats{Attack: 2, HitPoints: 30},
			defender:      entities.Stats{Defense: 20, HitPoints: 30},
			wantCast:      entities.CastRecord{Skill: "fireball", Type: entities.EffectDamage, Value: 0},
			wantAttackerH: 30,
			wantDefenderH: 30,
		},
		{
			name:          "cleave ignores defense",
			kind:          skills.KindCleave,
			attacker:      entities.Stats{Attack: 12, HitPoints: 30},
			defender:      entities.Stats{Defense: 99, HitPoints: 30},
			wantCast:      entities.CastRecord{Skill: "cleave", Type: entities.EffectDamage, Value: 4},
			wantAttackerH: 30,
			wantDefenderH: 26,
		},
		{
			name:          "mend heals the attacking team",
			kind:          skills.KindMend,
			attacker:      entities.Stats{Defense: 9, HitPoints: 10},
			defender:      entities.Stats{HitPoints: 30},
			wantCast:      entities.CastRecord{Skill: "mend", Type: entities.EffectHeal, Value: 2},
			wantAttackerH: 12,
			wantDefenderH: 30,
		},
		{
			name:          "none does nothing",
			kind:          skills.KindNone,
			attacker:      entities.Stats{Attack: 50, HitPoints: 10},
			defender:      entities.Stats{HitPoints: 30},
			wantCast:      entities.CastRecord{Skill: "none", Type: entities.EffectDamage, Value: 0},
			wantAttackerH: 10,
			wantDefenderH: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := skills.New(tt.kind)
			require.NoError(t, err)

			before := combatState(tt.attacker, tt.defender)
			after, cast := s.Fire(before)

			assert.Equal(t, tt.wantCast, cast)
			assert.Equal(t, tt.wantAttackerH, after.Attacker().Overall.HitPoints)
			assert.Equal(t, tt.wantDefenderH, after.Defender().Overall.HitPoints)

			// input untouched
			assert.Equal(t, tt.attacker.HitPoints, before.Attacker().Overall.HitPoints)
			assert.Equal(t, tt.defender.HitPoints, before.Defender().Overall.HitPoints)
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := skills.New(skills.Kind(42))
	assert.ErrorIs(t, err, internal.ErrInvalidParam)
	assert.Equal(t, "kind(42)", skills.Kind(42).String())
	assert.Panics(t, func() { skills.MustNew(skills.Kind(42)) })
}

func TestRegistry_ForStance(t *testing.T) {
	registry := skills.NewDefaultRegistry(nil)

	s, err := registry.ForStance("Arcane")
	require.NoError(t, err)
	assert.Equal(t, skills.KindFireball, s.Kind())

	s, err = registry.ForStance("Martial")
	require.NoError(t, err)
	assert.Equal(t, "cleave", s.Key())

	assert.Equal(t, []string{"Arcane", "Divine", "Martial"}, registry.Stances())
}

func TestRegistry_UnknownStance(t *testing.T) {
	registry := skills.NewDefaultRegistry(nil)

	_, err := registry.ForStance("Feral")
	assert.ErrorIs(t, err, internal.ErrUnknownStance)
}

func TestRegistry_UsesPicker(t *testing.T) {
	var asked []int
	registry := skills.NewRegistry(func(n int) int {
		asked = append(asked, n)
		return n - 1
	})
	registry.Register("Arcane", skills.MustNew(skills.KindFireball), skills.MustNew(skills.KindMend))

	s, err := registry.ForStance("Arcane")
	require.NoError(t, err)
	assert.Equal(t, skills.KindMend, s.Kind())
	assert.Equal(t, []int{2}, asked)
}

func TestRandomPicker_InRange(t *testing.T) {
	pick := skills.NewRandomPicker(3)
	for i := 0; i < 100; i++ {
		v := pick(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
	}
}
