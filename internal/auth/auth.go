// Package auth issues and verifies the anonymous session tokens players use
// to call the game service
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	grpcauth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"

	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/idgen"
)

const (
	// DefaultTokenTTL is how long an anonymous session lasts
	DefaultTokenTTL = 24 * time.Hour

	// DefaultIssuer is the iss claim of every token
	DefaultIssuer = "rpg-tales"

	minSecretLength = 16
	maxLabelLength  = 40
	signingMethod   = "HS256"
	bearerScheme    = "bearer"
)

// Claims are the verified contents of a session token
type Claims struct {
	PlayerID  string
	Label     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Label string `json:"label,omitempty"`
}

// Config configures the Authenticator
type Config struct {
	Secret      []byte
	Issuer      string
	TTL         time.Duration
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate fills defaults and checks required settings
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if len(c.Secret) < minSecretLength {
		return errors.InvalidArgumentf("secret must be at least %d bytes", minSecretLength)
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("id generator is required")
	}
	if c.Issuer == "" {
		c.Issuer = DefaultIssuer
	}
	if c.TTL == 0 {
		c.TTL = DefaultTokenTTL
	}
	return nil
}

// Authenticator hands out anonymous identities and checks them later
type Authenticator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clock.Clock
	ids    idgen.Generator
}

// New creates an Authenticator
func New(cfg *Config) (*Authenticator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Authenticator{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
		ids:    cfg.IDGenerator,
	}, nil
}

// Issue creates a fresh player identity and its signed token
func (a *Authenticator) Issue(label string) (string, *Claims, error) {
	label = strings.TrimSpace(label)
	if len([]rune(label)) > maxLabelLength {
		label = string([]rune(label)[:maxLabelLength])
	}

	now := a.clock.Now().UTC()
	claims := &Claims{
		PlayerID:  a.ids.Generate(),
		Label:     label,
		IssuedAt:  now,
		ExpiresAt: now.Add(a.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   claims.PlayerID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
		Label: label,
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign session token")
	}

	return signed, claims, nil
}

// Verify checks a token's signature, issuer and lifetime
func (a *Authenticator) Verify(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.Unauthenticated("session token is required")
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.clock.Now),
	)
	if err != nil {
		return nil, mapJWTError(err)
	}

	if strings.TrimSpace(parsed.Subject) == "" {
		return nil, errors.Unauthenticated("session token has no subject")
	}

	claims := &Claims{
		PlayerID: parsed.Subject,
		Label:    parsed.Label,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time.UTC()
	}

	return claims, nil
}

// AuthFunc reads the bearer token from gRPC metadata and stores the player in
// the context. Plug it into the go-grpc-middleware auth interceptors.
func (a *Authenticator) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := grpcauth.AuthFromMD(ctx, bearerScheme)
	if err != nil {
		return nil, errors.Unauthenticated("missing bearer token")
	}

	claims, err := a.Verify(token)
	if err != nil {
		return nil, err
	}

	return WithClaims(ctx, claims), nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Unauthenticated("session token is expired")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Unauthenticated("session token signature is invalid")
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return errors.Unauthenticated("session token issuer is invalid")
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Unauthenticated("session token is malformed")
	default:
		return errors.Unauthenticated("session token is invalid")
	}
}

// PeekPlayerID reads the subject of a token without checking its signature.
// Clients use it to learn their own player ID; servers must call Verify.
func PeekPlayerID(token string) (string, error) {
	var parsed sessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(token), &parsed); err != nil {
		return "", errors.Unauthenticated("session token is malformed")
	}
	if parsed.Subject == "" {
		return "", errors.Unauthenticated("session token has no subject")
	}
	return parsed.Subject, nil
}
