package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("backstory", "is required")

	s.True(ve.HasErrors())
	s.Equal("validation failed: backstory: is required; name: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "open the door", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("action", tc.value, vb)
			s.Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lowest roll", 1, false},
		{"highest roll", 20, false},
		{"zero", 0, true},
		{"twenty one", 21, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("roll", tc.value, 1, 20, vb)
			s.Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateExactLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateExactLength("room_code", "ABC12", 6, vb)
	s.Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateExactLength("room_code", "ABC123", 6, vb)
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateOneOf() {
	vb := errors.NewValidationBuilder()
	errors.ValidateOneOf("class", "Bard", []string{"Knight", "Rogue"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: Knight, Rogue")
}
