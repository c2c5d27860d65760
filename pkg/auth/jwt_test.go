package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *JWTValidator {
	t.Helper()
	v, err := NewJWTValidator(JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "mentra-backend",
	})
	require.NoError(t, err)
	return v
}

func TestJWTValidator_RoundTrip(t *testing.T) {
	v := newTestValidator(t)

	token, err := v.IssueToken("user-1", "tenant-1", time.Hour)
	require.NoError(t, err)

	claims, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
}

func TestJWTValidator_ExpiredToken(t *testing.T) {
	v := newTestValidator(t)

	token, err := v.IssueToken("user-1", "tenant-1", -time.Minute)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTValidator_WrongSignature(t *testing.T) {
	v := newTestValidator(t)

	other, err := NewJWTValidator(JWTConfig{SecretKey: "different-secret", Issuer: "mentra-backend"})
	require.NoError(t, err)
	token, err := other.IssueToken("user-1", "tenant-1", time.Hour)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestJWTValidator_MissingTenantClaim(t *testing.T) {
	v := newTestValidator(t)

	// Hand-roll a token without the tenant claim.
	now := time.Now()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "mentra-backend",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrMissingTenant)
}

func TestJWTValidator_RequiresSecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{})
	assert.Error(t, err)
}

func TestJWTValidator_WrongIssuer(t *testing.T) {
	v := newTestValidator(t)

	other, err := NewJWTValidator(JWTConfig{SecretKey: "test-secret", Issuer: "someone-else"})
	require.NoError(t, err)
	token, err := other.IssueToken("user-1", "tenant-1", time.Hour)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.Error(t, err)
}
