package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board-service/internal/domain"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30, 60)

	token, expiresAt, err := tm.GenerateAccessToken("user-1", domain.RoleCompany)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, domain.RoleCompany, claims.Role)
	assert.Empty(t, claims.Scope)
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 30, 60)
	other := NewTokenManager("other-secret", 30, 60)

	token, _, err := tm.GenerateAccessToken("user-1", domain.RoleApplicant)
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenRejectsVerificationScope(t *testing.T) {
	tm := NewTokenManager("test-secret", 30, 60)

	token, err := tm.GenerateVerificationToken("user-1")
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestVerificationTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30, 60)

	token, err := tm.GenerateVerificationToken("user-1")
	require.NoError(t, err)

	userID, expired, err := tm.ParseVerificationToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.False(t, expired)
}

func TestVerificationTokenExpiredStillIdentifiesUser(t *testing.T) {
	tm := NewTokenManager("test-secret", 30, 60)

	claims := &Claims{
		Scope: scopeEmailVerification,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	require.NoError(t, err)

	userID, expired, err := tm.ParseVerificationToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.True(t, expired)
}

func TestVerificationTokenRejectsAccessScope(t *testing.T) {
	tm := NewTokenManager("test-secret", 30, 60)

	token, _, err := tm.GenerateAccessToken("user-1", domain.RoleApplicant)
	require.NoError(t, err)

	_, _, err = tm.ParseVerificationToken(token)
	assert.Error(t, err)
}
