package mockdice

import (
	"context"
	"fmt"
	"sync"
)

// ManualMockRoller implements dice.Roller for testing with predetermined
// results. Rolls are consumed in order, one per requested name.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	calls     [][]string
	err       error
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll sets the next roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetError makes every following RollBatch fail with err
func (m *ManualMockRoller) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.calls = nil
	m.err = nil
}

// Calls returns the names requested by each RollBatch call so far
func (m *ManualMockRoller) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// Remaining returns how many scripted rolls are left
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// RollBatch implements dice.Roller.RollBatch
func (m *ManualMockRoller) RollBatch(_ context.Context, sides int, names []string) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, names)
	if m.err != nil {
		return nil, m.err
	}

	out := make(map[string]int, len(names))
	for _, name := range names {
		if m.rollIndex >= len(m.rolls) {
			return nil, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
		}
		roll := m.rolls[m.rollIndex]
		m.rollIndex++
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		out[name] = roll
	}

	return out, nil
}
