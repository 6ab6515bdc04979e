package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the backend embeds in its access tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// ExpiresAt returns the token's expiry, or the zero time when absent.
func (c *Claims) ExpiresAt() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}

// ParseClaims decodes the claims of an access token WITHOUT verifying its
// signature. The backend is the only party that validates tokens; on this
// side the claims are display data, and expiry is never enforced locally;
// a stale token is discovered by the 401 it produces.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("[ParseClaims] %w", err)
	}
	return claims, nil
}
