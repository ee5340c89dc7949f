package distcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rollmath/odds-api/internal/engine"
	"github.com/rollmath/odds-api/internal/errors"
	"github.com/rollmath/odds-api/internal/pkg/clock"
	distcache "github.com/rollmath/odds-api/internal/repositories/dist_cache"
	"github.com/rollmath/odds-api/internal/testutils"
)

type RedisCacheTestSuite struct {
	suite.Suite
	repo    distcache.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisCacheTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = &clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()

	repo, err := distcache.NewRedisRepository(&distcache.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisCacheTestSuite) testRows() []engine.Row {
	return []engine.Row{
		{Outcome: 2, Probability: 0.25, Percentage: 25.0},
		{Outcome: 3, Probability: 0.5, Percentage: 50.0, MostLikely: true},
		{Outcome: 4, Probability: 0.25, Percentage: 25.0},
	}
}

func (s *RedisCacheTestSuite) TestNewRedisRepository() {
	testCases := []struct {
		name    string
		config  *distcache.Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &distcache.Config{Clock: s.clock},
			wantErr: true,
			errMsg:  "redis client is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := distcache.NewRedisRepository(tc.config)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *RedisCacheTestSuite) TestSetThenGet() {
	setOutput, err := s.repo.Set(s.ctx, distcache.SetInput{
		DiceCount: 2,
		Sides:     2,
		Modifier:  0,
		Mode:      engine.RollModeNormal,
		Rows:      s.testRows(),
		TTL:       10 * time.Minute,
	})
	s.Require().NoError(err)
	s.Require().NotNil(setOutput.Distribution)
	s.Equal(s.clock.T, setOutput.Distribution.ComputedAt)
	s.Equal(s.clock.T.Add(10*time.Minute), setOutput.Distribution.ExpiresAt)

	getOutput, err := s.repo.Get(s.ctx, distcache.GetInput{
		DiceCount: 2,
		Sides:     2,
		Modifier:  0,
		Mode:      engine.RollModeNormal,
	})
	s.Require().NoError(err)
	s.Require().NotNil(getOutput.Distribution)
	s.Equal(2, getOutput.Distribution.DiceCount)
	s.Equal(s.testRows(), getOutput.Distribution.Rows)
}

func (s *RedisCacheTestSuite) TestGetMiss() {
	output, err := s.repo.Get(s.ctx, distcache.GetInput{
		DiceCount: 3,
		Sides:     6,
		Modifier:  1,
		Mode:      engine.RollModeAdvantage,
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
}

func (s *RedisCacheTestSuite) TestKeyIncludesAllParameters() {
	_, err := s.repo.Set(s.ctx, distcache.SetInput{
		DiceCount: 2,
		Sides:     6,
		Modifier:  0,
		Mode:      engine.RollModeNormal,
		Rows:      s.testRows(),
	})
	s.Require().NoError(err)

	// Same pool, different mode: separate entry.
	output, err := s.repo.Get(s.ctx, distcache.GetInput{
		DiceCount: 2,
		Sides:     6,
		Modifier:  0,
		Mode:      engine.RollModeAdvantage,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)

	// Same pool, different modifier: separate entry.
	output, err = s.repo.Get(s.ctx, distcache.GetInput{
		DiceCount: 2,
		Sides:     6,
		Modifier:  5,
		Mode:      engine.RollModeNormal,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
}

func (s *RedisCacheTestSuite) TestExpiredEntryIsNotFound() {
	_, err := s.repo.Set(s.ctx, distcache.SetInput{
		DiceCount: 2,
		Sides:     2,
		Mode:      engine.RollModeNormal,
		Rows:      s.testRows(),
		TTL:       time.Minute,
	})
	s.Require().NoError(err)

	// Advance past the entry's expiry; Redis would still hold it, the
	// clock check must reject it.
	s.clock.T = s.clock.T.Add(2 * time.Minute)

	output, err := s.repo.Get(s.ctx, distcache.GetInput{
		DiceCount: 2,
		Sides:     2,
		Mode:      engine.RollModeNormal,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
}

func (s *RedisCacheTestSuite) TestSetEmptyRows() {
	output, err := s.repo.Set(s.ctx, distcache.SetInput{
		DiceCount: 1,
		Sides:     6,
		Mode:      engine.RollModeNormal,
	})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(output)
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}
