package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rollmath/odds-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilderEmpty() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidationBuilderSingleField() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("CacheRepo")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "CacheRepo: is required")
}

func (s *ValidationTestSuite) TestValidationBuilderMultipleFields() {
	vb := errors.NewValidationBuilder()
	vb.Field("dice_count", "must be between 1 and 100")
	vb.Fieldf("sides", "must be at least %d", 2)

	err := vb.Build()
	s.Require().Error(err)

	var structured *errors.Error
	s.Require().True(errors.As(err, &structured))
	fields, ok := structured.Meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Contains(fields["dice_count"], "must be between 1 and 100")
	s.Assert().Contains(fields["sides"], "must be at least 2")
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "below minimum", value: 0, wantErr: true},
		{name: "at minimum", value: 1, wantErr: false},
		{name: "inside range", value: 42, wantErr: false},
		{name: "at maximum", value: 100, wantErr: false},
		{name: "above maximum", value: 101, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("dice_count", tc.value, 1, 100, vb)

			err := vb.Build()
			if tc.wantErr {
				s.Assert().Error(err)
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"normal", "advantage", "disadvantage"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("roll_mode", "advantage", allowed, vb)
	s.Assert().NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("roll_mode", "lucky", allowed, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be one of")
}
