package api

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the CLI can show about a bearer token without talking
// to the server. The backend issues JWTs; the signature is the server's
// business, so claims are read unverified and used for display only.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

var ErrNotAToken = errors.New("not a parseable token")

// InspectToken extracts display claims from a bearer token.
// ExpiresAt is zero when the token carries no exp claim.
func InspectToken(token string) (*TokenInfo, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, ErrNotAToken
	}

	info := &TokenInfo{}
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
