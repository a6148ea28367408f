package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims carried by a bearer token issued by the
// external authentication service.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService validates bearer tokens presented to the API.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
