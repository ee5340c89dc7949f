// Package engine computes exact probability distributions for pools of
// identical dice: iterated convolution for the sum distribution,
// advantage/disadvantage transforms, and goal-threshold aggregation.
package engine

import "sort"

// PMF is a probability mass function: a mapping from integer outcome to
// probability mass. Masses across all outcomes sum to 1.0 within
// accumulated double-precision error. A PMF is immutable once returned
// from the builder; transforms allocate a new one.
type PMF map[int]float64

// Outcomes returns the outcome values in ascending order.
func (p PMF) Outcomes() []int {
	outcomes := make([]int, 0, len(p))
	for outcome := range p {
		outcomes = append(outcomes, outcome)
	}
	sort.Ints(outcomes)
	return outcomes
}

// Bounds returns the smallest and largest achievable outcome.
// The second return is false for an empty PMF.
func (p PMF) Bounds() (lo, hi int, ok bool) {
	if len(p) == 0 {
		return 0, 0, false
	}
	first := true
	for outcome := range p {
		if first || outcome < lo {
			lo = outcome
		}
		if first || outcome > hi {
			hi = outcome
		}
		first = false
	}
	return lo, hi, true
}

// TotalMass sums every probability mass. Accumulation runs in outcome
// order so the result is reproducible bit for bit.
func (p PMF) TotalMass() float64 {
	var total float64
	for _, outcome := range p.Outcomes() {
		total += p[outcome]
	}
	return total
}
