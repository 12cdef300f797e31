package auth

import (
	"context"

	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

type claimsKey struct{}

// WithClaims returns a context carrying the caller's claims
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the caller's claims if the request was authenticated
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}

// PlayerIDFromContext returns the authenticated player or Unauthenticated
func PlayerIDFromContext(ctx context.Context) (string, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok || claims.PlayerID == "" {
		return "", errors.Unauthenticated("request is not authenticated")
	}
	return claims.PlayerID, nil
}
