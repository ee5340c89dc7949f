package engine

import (
	"fmt"

	"github.com/rollmath/odds-api/internal/errors"
)

// GoalOperator compares outcomes against a goal threshold.
type GoalOperator string

// Supported goal operators. AtLeast and AtMost include the threshold
// itself.
const (
	GoalExactly GoalOperator = "exactly"
	GoalAtLeast GoalOperator = "at_least"
	GoalAtMost  GoalOperator = "at_most"
)

// GoalOperators returns the accepted operator values, for validation
// messages.
func GoalOperators() []string {
	return []string{
		string(GoalExactly),
		string(GoalAtLeast),
		string(GoalAtMost),
	}
}

// Valid reports whether the operator is a known value.
func (op GoalOperator) Valid() bool {
	switch op {
	case GoalExactly, GoalAtLeast, GoalAtMost:
		return true
	}
	return false
}

// DisplayText phrases the goal the way result views present it:
// "8 exactly", "8 or higher", "8 or lower".
func (op GoalOperator) DisplayText(threshold int) string {
	switch op {
	case GoalAtLeast:
		return fmt.Sprintf("%d or higher", threshold)
	case GoalAtMost:
		return fmt.Sprintf("%d or lower", threshold)
	default:
		return fmt.Sprintf("%d exactly", threshold)
	}
}

// GoalProbability sums the probability mass matching the comparison.
//
// A threshold outside the achievable range is a valid zero-probability
// answer, not an error. Aggregation always runs over the full PMF;
// display filtering never applies here.
func GoalProbability(pmf PMF, threshold int, op GoalOperator) (float64, error) {
	switch op {
	case GoalExactly:
		return pmf[threshold], nil
	case GoalAtLeast:
		var total float64
		for _, outcome := range pmf.Outcomes() {
			if outcome >= threshold {
				total += pmf[outcome]
			}
		}
		return total, nil
	case GoalAtMost:
		var total float64
		for _, outcome := range pmf.Outcomes() {
			if outcome <= threshold {
				total += pmf[outcome]
			}
		}
		return total, nil
	default:
		return 0, errors.InvalidArgumentf("unknown goal operator: %q", op)
	}
}

// GoalAnswer is the evaluated result of a goal query against a
// distribution. It is recomputed whenever the distribution or the
// query changes; nothing is cached inside the engine.
type GoalAnswer struct {
	Threshold   int          `json:"threshold"`
	Operator    GoalOperator `json:"operator"`
	Probability float64      `json:"probability"`
	Percentage  float64      `json:"percentage"`
	DisplayText string       `json:"display_text"`
}

// EvaluateGoal aggregates the goal probability and packages it with
// its presentation fields.
func EvaluateGoal(pmf PMF, threshold int, op GoalOperator) (*GoalAnswer, error) {
	probability, err := GoalProbability(pmf, threshold, op)
	if err != nil {
		return nil, err
	}

	return &GoalAnswer{
		Threshold:   threshold,
		Operator:    op,
		Probability: probability,
		Percentage:  Percentage(probability),
		DisplayText: op.DisplayText(threshold),
	}, nil
}
