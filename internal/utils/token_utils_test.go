package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karales/todo_backend/internal/utils"
)

const tokenTestSecret = "token-utils-test-secret"

func TestGenerateJWT_RoundTrip(t *testing.T) {
	userID := uuid.NewString()

	token, err := utils.GenerateJWT(userID, tokenTestSecret, time.Hour, "todo-backend")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, tokenTestSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "todo-backend", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), tokenTestSecret, time.Hour, "todo-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), tokenTestSecret, -time.Minute, "todo-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, tokenTestSecret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_WrongSigningMethod(t *testing.T) {
	// Token signed with "none" must be rejected.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, tokenTestSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	claims, err := utils.ParseAndValidateJWT("not.a.jwt", tokenTestSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGenerateSecureRandomString_Unique(t *testing.T) {
	first, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	second, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)

	assert.Len(t, first, 64) // hex doubles the byte length
	assert.NotEqual(t, first, second)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
