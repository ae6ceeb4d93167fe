package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", "chirp-go", time.Hour)

	token, err := svc.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "chirp-go", claims.Issuer)
}

func TestJWTService_Parse_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", "chirp-go", time.Hour)
	other := NewJWTService("other-secret", "chirp-go", time.Hour)

	token, err := svc.Generate(42)
	require.NoError(t, err)

	claims, err := other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_Parse_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "chirp-go", -time.Minute)

	token, err := svc.Generate(42)
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestJWTService_Parse_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "chirp-go", time.Hour)

	claims, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_ExpireSeconds(t *testing.T) {
	svc := NewJWTService("test-secret", "chirp-go", 2*time.Hour)
	assert.Equal(t, 7200, svc.ExpireSeconds())
}
