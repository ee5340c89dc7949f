package engine

import (
	"context"

	"github.com/rollmath/odds-api/internal/errors"
)

// Build computes the exact PMF for the sum of diceCount independent
// sides-sided dice, with modifier added to every outcome.
//
// The distribution is built by discrete convolution, one die at a time:
// starting from the uniform single-die PMF, each additional die folds
// every face value into every running sum. This is exact arithmetic
// over IEEE-754 doubles, never sampling, and costs
// O(diceCount × range × sides).
//
// Cancellation is cooperative and coarse-grained: the context is
// checked between convolution steps, never mid-step. A canceled build
// returns a CodeCanceled error and no partial PMF.
func Build(ctx context.Context, diceCount, sides, modifier int) (PMF, error) {
	if diceCount < 1 {
		return nil, errors.InvalidArgumentf("dice count must be at least 1, got %d", diceCount)
	}
	if sides < 2 {
		return nil, errors.InvalidArgumentf("sides must be at least 2, got %d", sides)
	}

	if ctx.Err() != nil {
		return nil, errors.Canceled("distribution build canceled")
	}

	faceMass := 1.0 / float64(sides)

	// One die is uniform over {1..sides}.
	pmf := make(PMF, sides)
	for face := 1; face <= sides; face++ {
		pmf[face] = faceMass
	}

	lo, hi := 1, sides
	for die := 2; die <= diceCount; die++ {
		if ctx.Err() != nil {
			return nil, errors.Canceled("distribution build canceled").
				WithMeta("dice_convolved", die-1)
		}

		next := make(PMF, hi-lo+sides)
		// Iterate sums in ascending order so accumulation order, and
		// therefore the exact float result, is identical across runs.
		for sum := lo; sum <= hi; sum++ {
			mass := pmf[sum] * faceMass
			for face := 1; face <= sides; face++ {
				next[sum+face] += mass
			}
		}
		pmf = next
		lo, hi = lo+1, hi+sides
	}

	if modifier != 0 {
		shifted := make(PMF, len(pmf))
		for sum := lo; sum <= hi; sum++ {
			shifted[sum+modifier] = pmf[sum]
		}
		pmf = shifted
	}

	return pmf, nil
}
