package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return signed
}

func TestInspectToken_ReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})

	info, err := InspectToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(exp))
}

func TestInspectToken_NoExpiry(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "alice"})

	info, err := InspectToken(raw)
	require.NoError(t, err)
	assert.True(t, info.ExpiresAt.IsZero())
}

func TestInspectToken_Garbage(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrNotAToken)
}
