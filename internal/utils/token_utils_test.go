package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parishlife/parish_community_app/internal/utils"
)

const testSecret = "unit-test-secret"

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken("user-1", utils.TokenTypeAccess, testSecret, "issuer", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateToken(token, testSecret, utils.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "issuer", claims.Issuer)
	assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
}

func TestParseAndValidateTokenRejectsWrongType(t *testing.T) {
	refresh, err := utils.GenerateToken("user-1", utils.TokenTypeRefresh, testSecret, "issuer", time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateToken(refresh, testSecret, utils.TokenTypeAccess)
	assert.Error(t, err)
}

func TestParseAndValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken("user-1", utils.TokenTypeAccess, testSecret, "issuer", time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateToken(token, "other-secret", utils.TokenTypeAccess)
	assert.Error(t, err)
}

func TestParseAndValidateTokenRejectsExpired(t *testing.T) {
	token, err := utils.GenerateToken("user-1", utils.TokenTypeAccess, testSecret, "issuer", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateToken(token, testSecret, utils.TokenTypeAccess)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
