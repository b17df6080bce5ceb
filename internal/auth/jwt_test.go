package auth

import (
	"testing"
	"time"

	"reddybook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = &config.JWTConfig{AccessSecret: "secret", AccessExpiry: time.Hour, Issuer: "reddybook"}

func TestAccessToken_RoundTrip(t *testing.T) {
	token, sid, exp, err := GenerateAccessToken(testJWT, "id-1", "a@b.com", time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, sid)

	claims, err := ParseAccessToken(testJWT, token)
	require.NoError(t, err)
	assert.Equal(t, "id-1", claims.IdentityID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, sid, claims.SessionID())
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestParseAccessToken_Rejects(t *testing.T) {
	token, _, _, err := GenerateAccessToken(testJWT, "id-1", "a@b.com", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = ParseAccessToken(testJWT, token)
	assert.ErrorIs(t, err, ErrInvalidToken, "expired")

	token, _, _, err = GenerateAccessToken(testJWT, "id-1", "a@b.com", time.Now())
	require.NoError(t, err)
	other := *testJWT
	other.AccessSecret = "different"
	_, err = ParseAccessToken(&other, token)
	assert.ErrorIs(t, err, ErrInvalidToken, "wrong secret")

	_, err = ParseAccessToken(testJWT, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
