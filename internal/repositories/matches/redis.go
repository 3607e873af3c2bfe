package matches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/repositories"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	matchKeyPrefix = "match:"
	matchIndexKey  = "matches"

	// Finished matches are kept for a day
	matchTTL = 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed match repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = matchTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func matchKey(id string) string {
	return matchKeyPrefix + id
}

// Create stores a new match. SETNX keeps a second create from
// overwriting a running match.
func (r *redisRepository) Create(ctx context.Context, match *entities.CombatState) error {
	if err := validate(match); err != nil {
		return err
	}

	data, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("failed to serialize match: %w", err)
	}

	created, err := r.client.SetNX(ctx, matchKey(match.ID), string(data), r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	if !created {
		return repositories.NewRecordExistsError(match.ID)
	}

	if err := r.client.SAdd(ctx, matchIndexKey, match.ID).Err(); err != nil {
		return fmt.Errorf("failed to index match: %w", err)
	}

	return nil
}

// Get retrieves a match by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*entities.CombatState, error) {
	data, err := r.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repositories.NewRecordNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match entities.CombatState
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, fmt.Errorf("failed to deserialize match: %w", err)
	}

	return &match, nil
}

// Update replaces an existing match and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, match *entities.CombatState) error {
	if err := validate(match); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, matchKey(match.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check match: %w", err)
	}
	if exists == 0 {
		return repositories.NewRecordNotFoundError(match.ID)
	}

	data, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("failed to serialize match: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, matchKey(match.ID), string(data), r.ttl)
	pipe.SAdd(ctx, matchIndexKey, match.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}

// Delete removes a match and its index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	removed, err := r.client.Del(ctx, matchKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	if err := r.client.SRem(ctx, matchIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex match: %w", err)
	}

	if removed == 0 {
		return repositories.NewRecordNotFoundError(id)
	}

	return nil
}

// List loads every indexed match concurrently. Index entries whose match
// expired are skipped.
func (r *redisRepository) List(ctx context.Context) ([]*entities.CombatState, error) {
	ids, err := r.client.SMembers(ctx, matchIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	found := make([]*entities.CombatState, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			match, err := r.Get(gctx, id)
			if err != nil {
				if errors.Is(err, internal.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("failed to get match %s: %w", id, err)
			}
			found[i] = match
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*entities.CombatState, 0, len(found))
	for _, match := range found {
		if match != nil {
			out = append(out, match)
		}
	}
	sortMatches(out)

	return out, nil
}
