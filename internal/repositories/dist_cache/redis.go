package distcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/rollmath/odds-api/internal/engine"
	"github.com/rollmath/odds-api/internal/errors"
	"github.com/rollmath/odds-api/internal/pkg/clock"
	redisclient "github.com/rollmath/odds-api/internal/redis"
)

const (
	// Key pattern: distribution:{count}d{sides}:{modifier}:{mode}
	cacheKeyPrefix = "distribution:"
	defaultTTL     = 15 * time.Minute

	errNoRows = "rows cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for cached
// distributions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a cached distribution by its parameter tuple
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key := buildKey(input.DiceCount, input.Sides, input.Modifier, input.Mode)

	entryJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("distribution not cached")
		}
		return nil, errors.Wrapf(err, "failed to get distribution from Redis")
	}

	var dist Distribution
	if err := json.Unmarshal([]byte(entryJSON), &dist); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal distribution")
	}

	// Redis TTL already reaps entries; the clock check covers clients
	// that read a stale entry just before eviction.
	if r.clock.Now().After(dist.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("cached distribution has expired")
	}

	return &GetOutput{
		Distribution: &dist,
	}, nil
}

// Set stores a computed distribution with the specified TTL
func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if len(input.Rows) == 0 {
		return nil, errors.InvalidArgument(errNoRows)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	dist := &Distribution{
		DiceCount:  input.DiceCount,
		Sides:      input.Sides,
		Modifier:   input.Modifier,
		Mode:       input.Mode,
		Rows:       input.Rows,
		ComputedAt: now,
		ExpiresAt:  now.Add(ttl),
	}

	entryJSON, err := json.Marshal(dist)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal distribution")
	}

	key := buildKey(input.DiceCount, input.Sides, input.Modifier, input.Mode)
	if err := r.client.Set(ctx, key, entryJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store distribution in Redis")
	}

	return &SetOutput{
		Distribution: dist,
	}, nil
}

// buildKey creates the Redis key for a parameter tuple
func buildKey(diceCount, sides, modifier int, mode engine.RollMode) string {
	return fmt.Sprintf("%s%dd%d:%d:%s", cacheKeyPrefix, diceCount, sides, modifier, mode)
}
