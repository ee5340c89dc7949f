package engine

import (
	"context"

	"github.com/rollmath/odds-api/internal/errors"
)

// RollMode selects how the pool distribution is drawn: straight, or as
// the better/worse total of two independent rolls of the entire pool.
type RollMode string

// Supported roll modes
const (
	RollModeNormal       RollMode = "normal"
	RollModeAdvantage    RollMode = "advantage"
	RollModeDisadvantage RollMode = "disadvantage"
)

// RollModes returns the accepted mode values, for validation messages.
func RollModes() []string {
	return []string{
		string(RollModeNormal),
		string(RollModeAdvantage),
		string(RollModeDisadvantage),
	}
}

// Valid reports whether the mode is a known value.
func (m RollMode) Valid() bool {
	switch m {
	case RollModeNormal, RollModeAdvantage, RollModeDisadvantage:
		return true
	}
	return false
}

// ApplyRollMode derives the distribution for the given roll mode.
//
// Normal is the identity and returns the input PMF. Advantage returns
// the distribution of max(X, Y) for two independent draws X, Y from
// base; disadvantage is the min dual. Both visit every ordered outcome
// pair and accumulate the product of the two masses into the winning
// bucket, so total mass stays 1.0 (1 × 1 redistributed).
//
// The pairwise pass is O(n²) in distinct outcomes, so the context is
// checked once per outer iteration.
func ApplyRollMode(ctx context.Context, base PMF, mode RollMode) (PMF, error) {
	switch mode {
	case RollModeNormal:
		return base, nil
	case RollModeAdvantage:
		return pairwise(ctx, base, func(a, b int) int { return max(a, b) })
	case RollModeDisadvantage:
		return pairwise(ctx, base, func(a, b int) int { return min(a, b) })
	default:
		return nil, errors.InvalidArgumentf("unknown roll mode: %q", mode)
	}
}

func pairwise(ctx context.Context, base PMF, pick func(a, b int) int) (PMF, error) {
	outcomes := base.Outcomes()
	derived := make(PMF, len(base))
	for _, x := range outcomes {
		if ctx.Err() != nil {
			return nil, errors.Canceled("roll mode transform canceled")
		}
		massX := base[x]
		for _, y := range outcomes {
			derived[pick(x, y)] += massX * base[y]
		}
	}
	return derived, nil
}
