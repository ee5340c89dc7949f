package distribution_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rollmath/odds-api/internal/engine"
	"github.com/rollmath/odds-api/internal/errors"
	"github.com/rollmath/odds-api/internal/orchestrators/distribution"
	distcache "github.com/rollmath/odds-api/internal/repositories/dist_cache"
	distcachemock "github.com/rollmath/odds-api/internal/repositories/dist_cache/mock"
)

func newOrchestrator(t *testing.T, repo distcache.Repository) distribution.Service {
	t.Helper()

	svc, err := distribution.NewOrchestrator(&distribution.Config{
		CacheRepo: repo,
		CacheTTL:  time.Minute,
	})
	require.NoError(t, err)
	return svc
}

func TestGetDistribution_ComputesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := distcachemock.NewMockRepository(ctrl)
	svc := newOrchestrator(t, mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, distcache.GetInput{DiceCount: 2, Sides: 6, Modifier: 0, Mode: engine.RollModeNormal}).
		Return(nil, errors.NotFound("distribution not cached"))

	mockRepo.EXPECT().
		Set(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input distcache.SetInput) (*distcache.SetOutput, error) {
			require.Equal(t, 2, input.DiceCount)
			require.Equal(t, 6, input.Sides)
			require.Equal(t, engine.RollModeNormal, input.Mode)
			require.Len(t, input.Rows, 11)
			require.Equal(t, time.Minute, input.TTL)
			return &distcache.SetOutput{}, nil
		})

	output, err := svc.GetDistribution(ctx, &distribution.GetDistributionInput{
		DiceCount: 2,
		Sides:     6,
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.False(t, output.FromCache)
	assert.Nil(t, output.Goal)
	require.Len(t, output.Rows, 11)
	assert.Equal(t, 2, output.Rows[0].Outcome)
	assert.Equal(t, 12, output.Rows[10].Outcome)
	assert.True(t, output.Rows[5].MostLikely, "7 is the mode of 2d6")
}

func TestGetDistribution_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := distcachemock.NewMockRepository(ctrl)
	svc := newOrchestrator(t, mockRepo)
	ctx := context.Background()

	cachedRows := []engine.Row{
		{Outcome: 1, Probability: 0.5, Percentage: 50.0, MostLikely: true},
		{Outcome: 2, Probability: 0.5, Percentage: 50.0, MostLikely: true},
	}

	mockRepo.EXPECT().
		Get(ctx, distcache.GetInput{DiceCount: 1, Sides: 2, Modifier: 0, Mode: engine.RollModeNormal}).
		Return(&distcache.GetOutput{Distribution: &distcache.Distribution{Rows: cachedRows}}, nil)

	output, err := svc.GetDistribution(ctx, &distribution.GetDistributionInput{
		DiceCount: 1,
		Sides:     2,
		Mode:      engine.RollModeNormal,
	})
	require.NoError(t, err)

	assert.True(t, output.FromCache)
	assert.Equal(t, cachedRows, output.Rows)
}

func TestGetDistribution_CacheFailureDegradesToCompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := distcachemock.NewMockRepository(ctrl)
	svc := newOrchestrator(t, mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))
	mockRepo.EXPECT().
		Set(ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	output, err := svc.GetDistribution(ctx, &distribution.GetDistributionInput{
		DiceCount: 1,
		Sides:     6,
	})
	require.NoError(t, err, "a broken cache must not fail the request")
	require.Len(t, output.Rows, 6)
	assert.False(t, output.FromCache)
}

func TestGetDistribution_NoCacheConfigured(t *testing.T) {
	svc := newOrchestrator(t, nil)

	output, err := svc.GetDistribution(context.Background(), &distribution.GetDistributionInput{
		DiceCount: 3,
		Sides:     4,
		Modifier:  2,
	})
	require.NoError(t, err)

	require.Len(t, output.Rows, 10)
	assert.Equal(t, 5, output.Rows[0].Outcome)
	assert.Equal(t, 14, output.Rows[9].Outcome)
}

func TestGetDistribution_WithGoal(t *testing.T) {
	svc := newOrchestrator(t, nil)

	output, err := svc.GetDistribution(context.Background(), &distribution.GetDistributionInput{
		DiceCount: 2,
		Sides:     6,
		Goal: &distribution.GoalQuery{
			Threshold: 8,
			Operator:  engine.GoalAtLeast,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, output.Goal)
	assert.InDelta(t, 15.0/36.0, output.Goal.Probability, 1e-12)
	assert.Equal(t, 41.7, output.Goal.Percentage)
	assert.Equal(t, "8 or higher", output.Goal.DisplayText)
}

func TestGetDistribution_AdvantageMode(t *testing.T) {
	svc := newOrchestrator(t, nil)

	output, err := svc.GetDistribution(context.Background(), &distribution.GetDistributionInput{
		DiceCount: 1,
		Sides:     6,
		Mode:      engine.RollModeAdvantage,
	})
	require.NoError(t, err)

	require.Len(t, output.Rows, 6)
	// P(max of two d6 = 6) = 11/36
	assert.InDelta(t, 11.0/36.0, output.Rows[5].Probability, 1e-12)
}

func TestGetDistribution_Validation(t *testing.T) {
	svc := newOrchestrator(t, nil)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input *distribution.GetDistributionInput
	}{
		{name: "nil input", input: nil},
		{name: "zero dice", input: &distribution.GetDistributionInput{DiceCount: 0, Sides: 6}},
		{name: "too many dice", input: &distribution.GetDistributionInput{DiceCount: 101, Sides: 6}},
		{name: "one side", input: &distribution.GetDistributionInput{DiceCount: 1, Sides: 1}},
		{name: "too many sides", input: &distribution.GetDistributionInput{DiceCount: 1, Sides: 101}},
		{name: "modifier too small", input: &distribution.GetDistributionInput{DiceCount: 1, Sides: 6, Modifier: -1001}},
		{name: "modifier too large", input: &distribution.GetDistributionInput{DiceCount: 1, Sides: 6, Modifier: 1001}},
		{name: "unknown mode", input: &distribution.GetDistributionInput{DiceCount: 1, Sides: 6, Mode: "lucky"}},
		{name: "unknown goal operator", input: &distribution.GetDistributionInput{
			DiceCount: 1, Sides: 6,
			Goal: &distribution.GoalQuery{Threshold: 3, Operator: "near"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := svc.GetDistribution(ctx, tc.input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Nil(t, output)
		})
	}
}

func TestGetDistribution_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := distcachemock.NewMockRepository(ctrl)
	svc := newOrchestrator(t, mockRepo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cache miss first, then the build observes the canceled context.
	// Nothing must be stored.
	mockRepo.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.NotFound("distribution not cached"))

	output, err := svc.GetDistribution(ctx, &distribution.GetDistributionInput{
		DiceCount: 50,
		Sides:     100,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
	assert.Nil(t, output)
}

func TestEvaluateGoal(t *testing.T) {
	svc := newOrchestrator(t, nil)

	output, err := svc.EvaluateGoal(context.Background(), &distribution.EvaluateGoalInput{
		DiceCount: 2,
		Sides:     6,
		Threshold: 8,
		Operator:  engine.GoalAtLeast,
	})
	require.NoError(t, err)

	require.NotNil(t, output.Answer)
	assert.InDelta(t, 15.0/36.0, output.Answer.Probability, 1e-12)
	assert.Equal(t, "8 or higher", output.Answer.DisplayText)
}

func TestEvaluateGoal_ImpossibleThreshold(t *testing.T) {
	svc := newOrchestrator(t, nil)

	// Out of range thresholds are zero probability answers, not errors.
	output, err := svc.EvaluateGoal(context.Background(), &distribution.EvaluateGoalInput{
		DiceCount: 1,
		Sides:     6,
		Threshold: 10,
		Operator:  engine.GoalExactly,
	})
	require.NoError(t, err)
	assert.Zero(t, output.Answer.Probability)
}

func TestEvaluateGoal_UsesCachedRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := distcachemock.NewMockRepository(ctrl)
	svc := newOrchestrator(t, mockRepo)
	ctx := context.Background()

	cachedRows := []engine.Row{
		{Outcome: 1, Probability: 0.5, Percentage: 50.0},
		{Outcome: 2, Probability: 0.5, Percentage: 50.0},
	}
	mockRepo.EXPECT().
		Get(ctx, distcache.GetInput{DiceCount: 1, Sides: 2, Modifier: 0, Mode: engine.RollModeNormal}).
		Return(&distcache.GetOutput{Distribution: &distcache.Distribution{Rows: cachedRows}}, nil)

	output, err := svc.EvaluateGoal(ctx, &distribution.EvaluateGoalInput{
		DiceCount: 1,
		Sides:     2,
		Threshold: 2,
		Operator:  engine.GoalAtLeast,
	})
	require.NoError(t, err)
	assert.True(t, output.FromCache)
	assert.InDelta(t, 0.5, output.Answer.Probability, 1e-12)
}

func TestEvaluateGoal_InvalidOperator(t *testing.T) {
	svc := newOrchestrator(t, nil)

	output, err := svc.EvaluateGoal(context.Background(), &distribution.EvaluateGoalInput{
		DiceCount: 1,
		Sides:     6,
		Threshold: 3,
		Operator:  "between",
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Nil(t, output)

	// Field-level message naming the allowed operators, same shape as
	// the roll_mode validation.
	assert.Contains(t, err.Error(), "goal_operator")
	assert.Contains(t, err.Error(), "exactly, at_least, at_most")
}

func TestGetDistribution_InvalidGoalOperatorMessage(t *testing.T) {
	svc := newOrchestrator(t, nil)

	output, err := svc.GetDistribution(context.Background(), &distribution.GetDistributionInput{
		DiceCount: 1,
		Sides:     6,
		Goal:      &distribution.GoalQuery{Threshold: 3, Operator: "near"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "goal_operator")
}

func TestNewOrchestrator_InvalidConfig(t *testing.T) {
	svc, err := distribution.NewOrchestrator(&distribution.Config{CacheTTL: -time.Second})
	require.Error(t, err)
	assert.Nil(t, svc)
}
