package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/idgen"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type AuthenticatorTestSuite struct {
	suite.Suite

	clock *clock.Fixed
	auth  *Authenticator
}

func TestAuthenticatorSuite(t *testing.T) {
	suite.Run(t, new(AuthenticatorTestSuite))
}

func (s *AuthenticatorTestSuite) SetupTest() {
	s.clock = clock.NewFixed(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))

	a, err := New(&Config{
		Secret:      testSecret,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("player"),
	})
	s.Require().NoError(err)
	s.auth = a
}

func (s *AuthenticatorTestSuite) TestIssueAndVerify() {
	token, issued, err := s.auth.Issue("  Brave Tester  ")
	s.Require().NoError(err)
	s.Equal("player_1", issued.PlayerID)
	s.Equal("Brave Tester", issued.Label)
	s.Equal(s.clock.Now().Add(DefaultTokenTTL), issued.ExpiresAt)

	claims, err := s.auth.Verify(token)
	s.Require().NoError(err)
	s.Equal("player_1", claims.PlayerID)
	s.Equal("Brave Tester", claims.Label)
	s.True(issued.ExpiresAt.Equal(claims.ExpiresAt))
}

func (s *AuthenticatorTestSuite) TestPeekPlayerID() {
	token, issued, err := s.auth.Issue("Peeker")
	s.Require().NoError(err)

	id, err := PeekPlayerID(token)
	s.Require().NoError(err)
	s.Equal(issued.PlayerID, id)

	_, err = PeekPlayerID("not.a.token")
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthenticatorTestSuite) TestEachIssueIsANewPlayer() {
	_, first, err := s.auth.Issue("")
	s.Require().NoError(err)
	_, second, err := s.auth.Issue("")
	s.Require().NoError(err)

	s.NotEqual(first.PlayerID, second.PlayerID)
}

func (s *AuthenticatorTestSuite) TestExpired() {
	token, _, err := s.auth.Issue("late")
	s.Require().NoError(err)

	s.clock.Advance(DefaultTokenTTL + time.Minute)

	_, err = s.auth.Verify(token)
	s.True(errors.IsUnauthenticated(err))
	s.Contains(err.Error(), "expired")
}

func (s *AuthenticatorTestSuite) TestWrongSecret() {
	other, err := New(&Config{
		Secret:      []byte("another-secret-that-is-long"),
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("x"),
	})
	s.Require().NoError(err)

	token, _, err := other.Issue("")
	s.Require().NoError(err)

	_, err = s.auth.Verify(token)
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthenticatorTestSuite) TestGarbage() {
	for _, token := range []string{"", "   ", "not.a.jwt", "abc"} {
		_, err := s.auth.Verify(token)
		s.True(errors.IsUnauthenticated(err), "token %q", token)
	}
}

func (s *AuthenticatorTestSuite) TestAuthFunc() {
	token, _, err := s.auth.Issue("")
	s.Require().NoError(err)

	s.Run("valid bearer", func() {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

		ctx, err := s.auth.AuthFunc(ctx)
		s.Require().NoError(err)

		playerID, err := PlayerIDFromContext(ctx)
		s.Require().NoError(err)
		s.Equal("player_1", playerID)
	})

	s.Run("missing header", func() {
		_, err := s.auth.AuthFunc(context.Background())
		s.True(errors.IsUnauthenticated(err))
	})

	s.Run("wrong scheme", func() {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic "+token))
		_, err := s.auth.AuthFunc(ctx)
		s.True(errors.IsUnauthenticated(err))
	})
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *Config
	}{
		{name: "nil", cfg: nil},
		{name: "short secret", cfg: &Config{Secret: []byte("short"), Clock: clock.New(), IDGenerator: idgen.NewUUID("")}},
		{name: "no clock", cfg: &Config{Secret: testSecret, IDGenerator: idgen.NewUUID("")}},
		{name: "no ids", cfg: &Config{Secret: testSecret, Clock: clock.New()}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			if !errors.IsInvalidArgument(err) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestPlayerIDFromContext(t *testing.T) {
	_, err := PlayerIDFromContext(context.Background())
	if !errors.IsUnauthenticated(err) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}

	ctx := WithClaims(context.Background(), &Claims{PlayerID: "p1"})
	id, err := PlayerIDFromContext(ctx)
	if err != nil || id != "p1" {
		t.Fatalf("unexpected %q %v", id, err)
	}
}
