package combat

import (
	"math"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/clock"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/skills"
)

const (
	// a margin must exceed this to land
	marginThreshold = 10
	damageDivisor   = 5
	fumbleRoll      = 1
	criticalAimRoll = 10
)

// TurnRollNames are the dice drawn for every turn, in order
var TurnRollNames = []string{"skill", "aim", "hit"}

// SkillSelector picks the skill a fighter of a stance fires
type SkillSelector interface {
	ForStance(stance string) (skills.Skill, error)
}

// Outcome is the arithmetic of one turn before anything is applied
type Outcome struct {
	SkillMargin int
	AimMargin   int
	HitMargin   int
	Damage      int
	Fumble      bool
	Missed      bool
	Critical    bool
}

// Lands reports whether the damage is applied to the defender
func (o Outcome) Lands() bool {
	return o.HitMargin > marginThreshold
}

// SkillsFire reports whether the attacking members fire their skills
func (o Outcome) SkillsFire() bool {
	return o.SkillMargin > marginThreshold
}

// ComputeOutcome works out margins and damage for one turn.
//
// The attack-defense difference is counted twice in the damage base, once
// inside HitMargin and once explicitly.
func ComputeOutcome(attacker, defender entities.Stats, rolls entities.TurnRolls) Outcome {
	o := Outcome{
		SkillMargin: (rolls.Skill + attacker.Flow) - defender.Flow,
		AimMargin:   (rolls.Aim + attacker.Reflex) - defender.Dodge,
		HitMargin:   (rolls.Hit + attacker.Attack) - defender.Defense,
	}

	base := o.HitMargin + attacker.Attack - defender.Defense
	o.Damage = max(0, int(math.Ceil(float64(base)/damageDivisor)))

	o.Fumble = rolls.Aim == fumbleRoll
	o.Missed = o.AimMargin < marginThreshold
	if o.Fumble || o.Missed {
		o.Damage = 0
	}

	// zeroing above runs first, so a missed critical stays at zero
	if rolls.Aim == criticalAimRoll {
		o.Critical = true
		o.Damage *= 2
	}

	return o
}

// Engine applies turns to a combat state
type Engine struct {
	skills         SkillSelector
	clock          clock.TimeProvider
	alternateRoles bool
}

// EngineConfig holds configuration for the engine
type EngineConfig struct {
	Skills SkillSelector
	Clock  clock.TimeProvider

	// AlternateRoles swaps attacker and defender after every turn that
	// does not end the match. Off by default: the initiative winner
	// attacks for the whole match.
	AlternateRoles bool
}

// NewEngine creates a turn engine
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Skills == nil {
		panic("skill selector is required")
	}

	e := &Engine{
		skills:         cfg.Skills,
		clock:          cfg.Clock,
		alternateRoles: cfg.AlternateRoles,
	}
	if e.clock == nil {
		e.clock = clock.New()
	}

	return e
}

// RunTurn resolves one turn and returns the new state. The given state is
// never modified, so on error the caller still holds the last good state.
func (e *Engine) RunTurn(state *entities.CombatState, rolls entities.TurnRolls) (*entities.CombatState, error) {
	if state == nil {
		return nil, internal.NewMissingParamError("combat state")
	}
	if state.Finished() {
		return nil, internal.NewInvalidParamError("match " + state.ID + " is already finished")
	}

	attackerSnap := state.Attacker().Overall.Clone()
	defenderSnap := state.Defender().Overall.Clone()
	outcome := ComputeOutcome(attackerSnap.Stats, defenderSnap.Stats, rolls)

	next := state.Clone()
	if outcome.Lands() {
		next.Defender().Overall.HitPoints -= outcome.Damage
	}

	casts := []entities.CastRecord{}
	if outcome.SkillsFire() {
		for _, member := range state.Attacker().Members {
			skill, err := e.skills.ForStance(member.Stance)
			if err != nil {
				return nil, err
			}

			var cast entities.CastRecord
			next, cast = skill.Fire(next)
			casts = append(casts, cast)
		}
	}

	next.Turns = append(next.Turns, entities.TurnRecord{
		Attacker: attackerSnap,
		Defender: defenderSnap,
		Damage:   outcome.Damage,
		Rolls:    rolls,
		Casts:    casts,
	})

	if next.Defender().Overall.HitPoints <= 0 {
		finished := e.clock.Now()
		next.FinishedAt = &finished
		return next, nil
	}

	if e.alternateRoles {
		next.Teams[0], next.Teams[1] = next.Teams[1], next.Teams[0]
	}

	return next, nil
}
