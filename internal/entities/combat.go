package entities

import "time"

// EffectType describes what a skill cast did
type EffectType string

const (
	EffectDamage EffectType = "damage"
	EffectHeal   EffectType = "heal"
)

// CastRecord is one skill firing during a turn
type CastRecord struct {
	Skill string     `json:"skill"`
	Type  EffectType `json:"type"`
	Value int        `json:"value"`
}

// TurnRolls are the three d20 values drawn for a turn
type TurnRolls struct {
	Skill int `json:"skill"`
	Aim   int `json:"aim"`
	Hit   int `json:"hit"`
}

// TurnRecord is an immutable snapshot of a resolved turn. Attacker and
// Defender are captured before the turn's damage and skills are applied.
type TurnRecord struct {
	Attacker Overall      `json:"attacker"`
	Defender Overall      `json:"defender"`
	Damage   int          `json:"damage"`
	Rolls    TurnRolls    `json:"rolls"`
	Casts    []CastRecord `json:"casts"`
}

// InitiativeResult records how turn order was decided
type InitiativeResult struct {
	Winner  Overall        `json:"winner"`
	Rolls   map[string]int `json:"rolls"`
	Scores  [2]int         `json:"scores"`
	Rerolls int            `json:"rerolls"`
}

// CombatState is a whole match. Teams[0] attacks, Teams[1] defends.
type CombatState struct {
	ID         string            `json:"id"`
	Teams      [2]TeamAggregate  `json:"teams"`
	Initiative *InitiativeResult `json:"initiative,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
	Turns      []TurnRecord      `json:"turns"`
}

// Attacker returns the attacking team
func (c *CombatState) Attacker() *TeamAggregate {
	return &c.Teams[0]
}

// Defender returns the defending team
func (c *CombatState) Defender() *TeamAggregate {
	return &c.Teams[1]
}

// Finished reports whether the match has ended
func (c *CombatState) Finished() bool {
	return c.FinishedAt != nil
}

// Clone returns a deep copy so a turn can be applied without touching the
// caller's state. Turn records are immutable and are shared.
func (c *CombatState) Clone() *CombatState {
	if c == nil {
		return nil
	}

	out := &CombatState{
		ID:         c.ID,
		Teams:      [2]TeamAggregate{c.Teams[0].Clone(), c.Teams[1].Clone()},
		Initiative: c.Initiative,
		StartedAt:  c.StartedAt,
	}
	if c.FinishedAt != nil {
		finished := *c.FinishedAt
		out.FinishedAt = &finished
	}
	out.Turns = make([]TurnRecord, len(c.Turns), len(c.Turns)+1)
	copy(out.Turns, c.Turns)

	return out
}
