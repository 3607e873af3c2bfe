// Package skills holds the catalog of stance skills. Skills are a closed
// set of kinds; a stance maps to one or more of them through a Registry.
package skills

import (
	"fmt"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/entities"
)

// Kind identifies a skill
type Kind int

const (
	KindNone Kind = iota
	KindFireball
	KindCleave
	KindMend
)

var kindKeys = map[Kind]string{
	KindNone:     "none",
	KindFireball: "fireball",
	KindCleave:   "cleave",
	KindMend:     "mend",
}

func (k Kind) String() string {
	if key, ok := kindKeys[k]; ok {
		return key
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Skill is something an attacking fighter can fire during a turn.
// Fire never modifies the state it is given; it returns the updated copy.
type Skill interface {
	Key() string
	Kind() Kind
	Fire(state *entities.CombatState) (*entities.CombatState, entities.CastRecord)
}

type skill struct {
	kind Kind
}

// New returns the skill for kind
func New(kind Kind) (Skill, error) {
	if _, ok := kindKeys[kind]; !ok {
		return nil, internal.NewInvalidParamError(fmt.Sprintf("unknown skill %s", kind))
	}
	return skill{kind: kind}, nil
}

// MustNew is New for package-level catalogs
func MustNew(kind Kind) Skill {
	s, err := New(kind)
	if err != nil {
		panic(err)
	}
	return s
}

func (s skill) Key() string { return s.kind.String() }
func (s skill) Kind() Kind  { return s.kind }

// Fire implements Skill.Fire
func (s skill) Fire(state *entities.CombatState) (*entities.CombatState, entities.CastRecord) {
	next := state.Clone()
	attacker := &next.Attacker().Overall
	defender := &next.Defender().Overall

	switch s.kind {
	case KindFireball:
		// attack against half the defense
		dmg := max(attacker.Attack-defender.Defense/2, 0)
		defender.HitPoints -= dmg
		return next, s.cast(entities.EffectDamage, dmg)

	case KindCleave:
		// ignores defense entirely
		dmg := attacker.Attack / 3
		defender.HitPoints -= dmg
		return next, s.cast(entities.EffectDamage, dmg)

	case KindMend:
		heal := attacker.Defense / 4
		attacker.HitPoints += heal
		return next, s.cast(entities.EffectHeal, heal)
	}

	return next, s.cast(entities.EffectDamage, 0)
}

func (s skill) cast(effect entities.EffectType, value int) entities.CastRecord {
	return entities.CastRecord{
		Skill: s.Key(),
		Type:  effect,
		Value: value,
	}
}
