package distribution

import (
	"github.com/rollmath/odds-api/internal/engine"
)

// GoalQuery pairs a threshold with a comparison operator. It is
// stateless and passed per call.
type GoalQuery struct {
	Threshold int
	Operator  engine.GoalOperator
}

// GetDistributionInput defines the request for computing a distribution
type GetDistributionInput struct {
	DiceCount int
	Sides     int
	Modifier  int

	// Mode defaults to normal when empty
	Mode engine.RollMode

	// Goal is optional; when present the answer is evaluated against
	// the (possibly transformed) distribution
	Goal *GoalQuery
}

// GetDistributionOutput defines the response for computing a distribution
type GetDistributionOutput struct {
	// Rows is the full, unfiltered distribution in ascending outcome order
	Rows []engine.Row

	// Goal is present when the input carried a goal query
	Goal *engine.GoalAnswer

	// FromCache reports whether the rows came from the cache
	FromCache bool
}

// EvaluateGoalInput defines the request for evaluating a goal query
type EvaluateGoalInput struct {
	DiceCount int
	Sides     int
	Modifier  int
	Mode      engine.RollMode
	Threshold int
	Operator  engine.GoalOperator
}

// EvaluateGoalOutput defines the response for evaluating a goal query
type EvaluateGoalOutput struct {
	Answer    *engine.GoalAnswer
	FromCache bool
}
