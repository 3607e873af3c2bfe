package dice

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/skirmish/internal"
)

// randomRoller implements Roller with math/rand
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded with seed. A zero seed uses the
// current time.
func NewRandomRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// RollBatch implements Roller.RollBatch
func (r *randomRoller) RollBatch(ctx context.Context, sides int, names []string) (map[string]int, error) {
	if sides < 1 {
		return nil, internal.NewInvalidParamError(fmt.Sprintf("invalid dice size %d", sides))
	}
	if err := ctx.Err(); err != nil {
		return nil, internal.NewTransientDiceError("roll canceled", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int, len(names))
	for _, name := range names {
		out[name] = r.rng.Intn(sides) + 1
	}

	log.Println("Rolling d", sides, "for", names, ":", out)
	return out, nil
}
