package matches

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/repositories"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	matches map[string]*entities.CombatState
}

// NewInMemoryRepository creates a new in-memory match repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		matches: make(map[string]*entities.CombatState),
	}
}

// Create stores a new match
func (r *inMemoryRepository) Create(ctx context.Context, match *entities.CombatState) error {
	if err := validate(match); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[match.ID]; exists {
		return repositories.NewRecordExistsError(match.ID)
	}

	r.matches[match.ID] = match.Clone()
	return nil
}

// Get retrieves a match by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*entities.CombatState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match, exists := r.matches[id]
	if !exists {
		return nil, repositories.NewRecordNotFoundError(id)
	}

	return match.Clone(), nil
}

// Update replaces an existing match
func (r *inMemoryRepository) Update(ctx context.Context, match *entities.CombatState) error {
	if err := validate(match); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[match.ID]; !exists {
		return repositories.NewRecordNotFoundError(match.ID)
	}

	r.matches[match.ID] = match.Clone()
	return nil
}

// Delete removes a match
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[id]; !exists {
		return repositories.NewRecordNotFoundError(id)
	}

	delete(r.matches, id)
	return nil
}

// List returns every match
func (r *inMemoryRepository) List(ctx context.Context) ([]*entities.CombatState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.CombatState, 0, len(r.matches))
	for _, match := range r.matches {
		out = append(out, match.Clone())
	}
	sortMatches(out)

	return out, nil
}

func validate(match *entities.CombatState) error {
	if match == nil {
		return internal.NewMissingParamError("match")
	}
	if match.ID == "" {
		return internal.NewMissingParamError("match.ID")
	}
	return nil
}

func sortMatches(matches []*entities.CombatState) {
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].StartedAt.Equal(matches[j].StartedAt) {
			return matches[i].StartedAt.Before(matches[j].StartedAt)
		}
		return matches[i].ID < matches[j].ID
	})
}
