package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "bazaar", time.Hour)

	token, err := a.GenerateToken(42, "aisyah")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "aisyah", claims.Username)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "bazaar", claims.Issuer)
}

func TestValidateTokenMissing(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "bazaar", time.Hour)

	_, err := a.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTAuthenticator("secret-one", "bazaar", time.Hour)
	verifier := NewJWTAuthenticator("secret-two", "bazaar", time.Hour)

	token, err := issuer.GenerateToken(1, "ali")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "bazaar", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	a.now = func() time.Time { return issued }

	token, err := a.GenerateToken(1, "ali")
	require.NoError(t, err)

	a.now = time.Now
	_, err = a.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateTokenRejectsNoneAlgorithm(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "bazaar", time.Hour)

	claims := Claims{
		UserID:   1,
		Username: "ali",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "bazaar",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "bazaar", time.Hour)

	_, err := a.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
