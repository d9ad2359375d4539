package jwt_test

import (
	"testing"
	"time"

	"fridgesmart/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) jwt.JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return jwt.NewJWTService()
}

func TestGenerateAndParseUserToken(t *testing.T) {
	service := newTestService(t)

	token := service.GenerateTokenUser("user-123", "user")
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "user", role)
}

func TestParseInvalidToken(t *testing.T) {
	service := newTestService(t)

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenSignedWithDifferentSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	first := jwt.NewJWTService()
	token := first.GenerateTokenUser("user-123", "user")

	t.Setenv("JWT_SECRET", "secret-two")
	second := jwt.NewJWTService()

	_, _, err := second.GetUserIDByToken(token)
	assert.Error(t, err)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateTokenVerifyEmail("dana@example.com", time.Hour)
	require.NoError(t, err)

	email, err := service.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", email)
}

func TestVerifyEmailTokenExpired(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateTokenVerifyEmail("dana@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenVerifyEmail(token)
	assert.Error(t, err)
}
