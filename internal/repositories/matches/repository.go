package matches

//go:generate mockgen -destination=mock/mock_repository.go -package=mockmatchrepo -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/skirmish/internal/entities"
)

// Repository defines the interface for match storage operations
type Repository interface {
	// Create stores a new match
	Create(ctx context.Context, match *entities.CombatState) error

	// Get retrieves a match by ID
	Get(ctx context.Context, id string) (*entities.CombatState, error)

	// Update replaces an existing match, typically after each turn
	Update(ctx context.Context, match *entities.CombatState) error

	// Delete removes a match
	Delete(ctx context.Context, id string) error

	// List returns all stored matches ordered by start time
	List(ctx context.Context) ([]*entities.CombatState, error)
}
