// uuid simple generator that allows mocking
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator hands out "<prefix>-1", "<prefix>-2", ... so seeded runs
// produce identical match IDs
type SequenceGenerator struct {
	prefix string
	next   atomic.Int64
}

// NewSequenceGenerator creates a SequenceGenerator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next ID in the sequence
func (g *SequenceGenerator) New() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
