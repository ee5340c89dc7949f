// Package distribution implements the orchestrator that computes,
// transforms, caches, and packages dice probability distributions.
package distribution

//go:generate mockgen -destination=mock/mock_service.go -package=distributionmock github.com/rollmath/odds-api/internal/orchestrators/distribution Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/rollmath/odds-api/internal/engine"
	"github.com/rollmath/odds-api/internal/errors"
	distcache "github.com/rollmath/odds-api/internal/repositories/dist_cache"
)

// Practical input bounds enforced on behalf of callers. The engine
// itself only requires diceCount >= 1 and sides >= 2.
const (
	MinDiceCount = 1
	MaxDiceCount = 100
	MinSides     = 2
	MaxSides     = 100
	MinModifier  = -1000
	MaxModifier  = 1000
)

// Service defines the interface for distribution operations
type Service interface {
	// GetDistribution computes (or loads from cache) the exact
	// distribution for a dice pool, optionally answering a goal query
	GetDistribution(ctx context.Context, input *GetDistributionInput) (*GetDistributionOutput, error)

	// EvaluateGoal answers a goal query against a pool's distribution
	EvaluateGoal(ctx context.Context, input *EvaluateGoalInput) (*EvaluateGoalOutput, error)
}

// Config holds the dependencies for the distribution orchestrator
type Config struct {
	// CacheRepo is optional; nil disables caching and every request is
	// computed from scratch
	CacheRepo distcache.Repository

	// CacheTTL bounds cached entries; zero uses the repository default
	CacheTTL time.Duration
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CacheTTL < 0 {
		return errors.InvalidArgument("cache TTL must not be negative")
	}
	return nil
}

type orchestrator struct {
	cacheRepo distcache.Repository
	cacheTTL  time.Duration
}

// NewOrchestrator creates a new distribution orchestrator with the
// provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		cacheRepo: cfg.CacheRepo,
		cacheTTL:  cfg.CacheTTL,
	}, nil
}

// normalizeMode defaults an empty mode to normal
func normalizeMode(mode engine.RollMode) engine.RollMode {
	if mode == "" {
		return engine.RollModeNormal
	}
	return mode
}

// validatePool checks the practical bounds for a distribution request
func validatePool(diceCount, sides, modifier int, mode engine.RollMode) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("dice_count", diceCount, MinDiceCount, MaxDiceCount, vb)
	errors.ValidateRange("sides", sides, MinSides, MaxSides, vb)
	errors.ValidateRange("modifier", modifier, MinModifier, MaxModifier, vb)
	errors.ValidateEnum("roll_mode", string(mode), engine.RollModes(), vb)
	return vb.Build()
}

// validateGoalOperator checks the operator of a goal query
func validateGoalOperator(op engine.GoalOperator) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("goal_operator", string(op), engine.GoalOperators(), vb)
	return vb.Build()
}

// GetDistribution computes or loads the distribution for a dice pool
func (o *orchestrator) GetDistribution(ctx context.Context, input *GetDistributionInput) (*GetDistributionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode := normalizeMode(input.Mode)
	if err := validatePool(input.DiceCount, input.Sides, input.Modifier, mode); err != nil {
		return nil, err
	}
	if input.Goal != nil {
		if err := validateGoalOperator(input.Goal.Operator); err != nil {
			return nil, err
		}
	}

	rows, fromCache, err := o.distributionRows(ctx, input.DiceCount, input.Sides, input.Modifier, mode)
	if err != nil {
		return nil, err
	}

	output := &GetDistributionOutput{
		Rows:      rows,
		FromCache: fromCache,
	}

	if input.Goal != nil {
		answer, err := engine.EvaluateGoal(pmfFromRows(rows), input.Goal.Threshold, input.Goal.Operator)
		if err != nil {
			return nil, err
		}
		output.Goal = answer
	}

	slog.Info("Distribution computed",
		"dice_count", input.DiceCount,
		"sides", input.Sides,
		"modifier", input.Modifier,
		"roll_mode", mode,
		"outcomes", len(rows),
		"from_cache", fromCache,
	)

	return output, nil
}

// EvaluateGoal answers a goal query against a pool's distribution
func (o *orchestrator) EvaluateGoal(ctx context.Context, input *EvaluateGoalInput) (*EvaluateGoalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode := normalizeMode(input.Mode)
	if err := validatePool(input.DiceCount, input.Sides, input.Modifier, mode); err != nil {
		return nil, err
	}
	if err := validateGoalOperator(input.Operator); err != nil {
		return nil, err
	}

	rows, fromCache, err := o.distributionRows(ctx, input.DiceCount, input.Sides, input.Modifier, mode)
	if err != nil {
		return nil, err
	}

	// Aggregation always runs over the full distribution; rows are
	// never display-filtered before this point.
	answer, err := engine.EvaluateGoal(pmfFromRows(rows), input.Threshold, input.Operator)
	if err != nil {
		return nil, err
	}

	slog.Info("Goal evaluated",
		"dice_count", input.DiceCount,
		"sides", input.Sides,
		"modifier", input.Modifier,
		"roll_mode", mode,
		"goal", answer.DisplayText,
		"probability", answer.Probability,
	)

	return &EvaluateGoalOutput{
		Answer:    answer,
		FromCache: fromCache,
	}, nil
}

// distributionRows loads the rows from cache when possible, computing
// and storing them otherwise. Cache failures degrade to computing; a
// broken cache must not fail requests.
func (o *orchestrator) distributionRows(ctx context.Context, diceCount, sides, modifier int, mode engine.RollMode) ([]engine.Row, bool, error) {
	if o.cacheRepo != nil {
		getOutput, err := o.cacheRepo.Get(ctx, distcache.GetInput{
			DiceCount: diceCount,
			Sides:     sides,
			Modifier:  modifier,
			Mode:      mode,
		})
		if err == nil {
			return getOutput.Distribution.Rows, true, nil
		}
		if !errors.IsNotFound(err) {
			slog.Warn("Distribution cache lookup failed",
				"dice_count", diceCount,
				"sides", sides,
				"error", err,
			)
		}
	}

	base, err := engine.Build(ctx, diceCount, sides, modifier)
	if err != nil {
		if errors.IsCanceled(err) {
			// Expected when a newer request supersedes this one.
			slog.Debug("Distribution build canceled",
				"dice_count", diceCount,
				"sides", sides,
			)
		}
		return nil, false, err
	}

	pmf, err := engine.ApplyRollMode(ctx, base, mode)
	if err != nil {
		return nil, false, err
	}

	rows := engine.Rows(pmf)

	if o.cacheRepo != nil {
		if _, err := o.cacheRepo.Set(ctx, distcache.SetInput{
			DiceCount: diceCount,
			Sides:     sides,
			Modifier:  modifier,
			Mode:      mode,
			Rows:      rows,
			TTL:       o.cacheTTL,
		}); err != nil {
			slog.Warn("Failed to cache distribution",
				"dice_count", diceCount,
				"sides", sides,
				"error", err,
			)
		}
	}

	return rows, false, nil
}

// pmfFromRows reassembles the exact PMF carried by unfiltered rows
func pmfFromRows(rows []engine.Row) engine.PMF {
	pmf := make(engine.PMF, len(rows))
	for _, row := range rows {
		pmf[row.Outcome] = row.Probability
	}
	return pmf
}
