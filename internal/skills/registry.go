package skills

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/skirmish/internal"
)

// Picker returns an index in [0, n)
type Picker func(n int) int

// NewRandomPicker returns a Picker backed by math/rand. A zero seed uses the
// current time.
func NewRandomPicker(seed int64) Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	var mu sync.Mutex
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return rng.Intn(n)
	}
}

// Registry maps stances to the skills a fighter of that stance can fire
type Registry struct {
	mu       sync.RWMutex
	byStance map[string][]Skill
	pick     Picker
}

// NewRegistry creates an empty registry. A nil picker always picks the
// first skill.
func NewRegistry(pick Picker) *Registry {
	if pick == nil {
		pick = func(int) int { return 0 }
	}
	return &Registry{
		byStance: make(map[string][]Skill),
		pick:     pick,
	}
}

// NewDefaultRegistry creates a registry with the standard catalog
func NewDefaultRegistry(pick Picker) *Registry {
	r := NewRegistry(pick)
	r.Register("Arcane", MustNew(KindFireball))
	r.Register("Martial", MustNew(KindCleave))
	r.Register("Divine", MustNew(KindMend))
	return r
}

// Register adds skills to a stance
func (r *Registry) Register(stance string, skills ...Skill) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byStance[stance] = append(r.byStance[stance], skills...)
}

// ForStance picks one skill for stance
func (r *Registry) ForStance(stance string) (Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	options := r.byStance[stance]
	if len(options) == 0 {
		return nil, internal.NewUnknownStanceError(stance)
	}
	if len(options) == 1 {
		return options[0], nil
	}

	return options[r.pick(len(options))], nil
}

// Stances returns all registered stances, sorted
func (r *Registry) Stances() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byStance))
	for stance := range r.byStance {
		out = append(out, stance)
	}
	sort.Strings(out)
	return out
}
