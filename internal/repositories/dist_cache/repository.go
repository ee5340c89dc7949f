// Package distcache provides the repository interface and types for
// caching computed dice distributions.
package distcache

import (
	"context"
	"time"

	"github.com/rollmath/odds-api/internal/engine"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=distcachemock github.com/rollmath/odds-api/internal/repositories/dist_cache Repository

// Distribution is one cached computation result. The engine is
// deterministic for a given parameter tuple, so a cached entry is
// exactly what a fresh computation would produce.
type Distribution struct {
	// Parameters the distribution was computed for
	DiceCount int
	Sides     int
	Modifier  int
	Mode      engine.RollMode

	// Ordered display rows, unfiltered
	Rows []engine.Row

	// When this entry was computed
	ComputedAt time.Time

	// When this entry expires
	ExpiresAt time.Time
}

// GetInput identifies a cached distribution by its parameter tuple
type GetInput struct {
	DiceCount int
	Sides     int
	Modifier  int
	Mode      engine.RollMode
}

// GetOutput contains the result of a cache lookup
type GetOutput struct {
	Distribution *Distribution
}

// SetInput contains parameters for storing a computed distribution
type SetInput struct {
	DiceCount int
	Sides     int
	Modifier  int
	Mode      engine.RollMode
	Rows      []engine.Row

	// TTL is how long the entry should live; zero uses the default
	TTL time.Duration
}

// SetOutput contains the stored entry
type SetOutput struct {
	Distribution *Distribution
}

// Repository defines the interface for distribution cache storage
type Repository interface {
	// Get retrieves a cached distribution; NotFound when absent or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores a computed distribution with the specified TTL
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}
