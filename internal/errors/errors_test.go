package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "room not found",
			expected: "NOT_FOUND: room not found",
		},
		{
			name:     "aborted error",
			code:     errors.CodeAborted,
			message:  "room changed",
			expected: "ABORTED: room changed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load room")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load room", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	notFound := errors.NotFound("room not found").WithMeta("room_code", "ABC123")
	wrapped := errors.Wrapf(notFound, "failed to join room %s", "ABC123")

	s.True(errors.IsNotFound(wrapped))
	s.Equal("ABC123", errors.GetMeta(wrapped)["room_code"])
	s.Equal("failed to join room ABC123", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestWrapDoesNotShareMeta() {
	inner := errors.NotFound("room not found").WithRoom("ABC123")
	outer := errors.Wrap(inner, "failed to load room").WithMeta("player_id", "p1")

	s.Equal("ABC123", errors.RoomCodeOf(outer))
	s.NotContains(inner.Meta, "player_id")
}

func (s *ErrorsTestSuite) TestRoomCodeOf() {
	s.Equal("", errors.RoomCodeOf(nil))
	s.Equal("", errors.RoomCodeOf(fmt.Errorf("plain")))
	s.Equal("XYZ789", errors.RoomCodeOf(errors.PermissionDenied("not the host").WithRoom("XYZ789")))
}

func (s *ErrorsTestSuite) TestRetryable() {
	s.True(errors.CodeUnavailable.Retryable())
	s.True(errors.CodeAborted.Retryable())
	s.False(errors.CodeInvalidArgument.Retryable())
	s.False(errors.CodePermissionDenied.Retryable())
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	s.Equal(codes.FailedPrecondition, errors.CodeFailedPrecondition.GRPCCode())
	s.Equal(codes.Unknown, errors.Code("MYSTERY").GRPCCode())

	back := errors.FromGRPCError(status.Error(codes.DataLoss, "lost"))
	s.True(errors.IsInternal(back))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("timeout"), errors.CodeUnavailable, "narrator unavailable")
	s.True(errors.IsUnavailable(wrapped))
	s.ErrorContains(wrapped, "timeout")
}

func (s *ErrorsTestSuite) TestGetCodeOnPlainError() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("boom")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{name: "nil", err: nil, wantCode: codes.OK},
		{name: "not found", err: errors.NotFound("room not found"), wantCode: codes.NotFound},
		{name: "aborted", err: errors.Abortedf("version %d is stale", 3), wantCode: codes.Aborted},
		{name: "unavailable", err: errors.Unavailable("try again"), wantCode: codes.Unavailable},
		{name: "plain error", err: fmt.Errorf("boom"), wantCode: codes.Internal},
		{name: "already grpc", err: status.Error(codes.Canceled, "gone"), wantCode: codes.Canceled},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			grpcErr := errors.ToGRPCError(tc.err)
			s.Equal(tc.wantCode, status.Code(grpcErr))
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsMeta() {
	original := errors.PermissionDenied("not your turn").WithMeta("room_code", "QWERTY")

	back := errors.FromGRPCError(errors.ToGRPCError(original))

	s.True(errors.IsPermissionDenied(back))
	s.Equal("not your turn", errors.GetMessage(back))
	s.Equal("QWERTY", errors.GetMeta(back)["room_code"])
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsValidationFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("action")
	errors.ValidateRange("roll", 0, 1, 20, vb)

	back := errors.FromGRPCError(errors.ToGRPCError(vb.Build()))

	s.True(errors.IsInvalidArgument(back))
	fields, ok := errors.GetMeta(back)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Equal([]string{"is required"}, fields["action"])
	s.Equal([]string{"must be between 1 and 20"}, fields["roll"])
}
