package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduflow/eduflow-api/internal/model"
)

const testSecret = "test-secret"

func TestIdentityTokenRoundTrip(t *testing.T) {
	claims := model.Claims{Username: "jane", LabID: "lab-42", Role: "instructor"}

	raw, err := NewIdentityToken(testSecret, claims, time.Minute)
	require.NoError(t, err)

	got, err := ParseIdentity(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestParseIdentityWrongSecret(t *testing.T) {
	raw, err := NewIdentityToken(testSecret, model.Claims{Username: "jane"}, time.Minute)
	require.NoError(t, err)

	_, err = ParseIdentity("other-secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseIdentityExpired(t *testing.T) {
	raw, err := NewIdentityToken(testSecret, model.Claims{Username: "jane"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseIdentity(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseIdentityMalformed(t *testing.T) {
	_, err := ParseIdentity(testSecret, "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseIdentityMissingClaimsDefaultEmpty(t *testing.T) {
	// Token carrying only a username: labid and role default to "".
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "jane",
		"exp":      time.Now().Add(time.Minute).Unix(),
	})
	raw, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	got, err := ParseIdentity(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, model.Claims{Username: "jane", LabID: "", Role: ""}, got)
}
