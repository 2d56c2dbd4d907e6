package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"servicematch/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID, "alice", model.RoleSeeker)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleSeeker, claims.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateAccessToken(uuid.New(), "alice", model.RoleSeeker)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExtractTokenID(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	userID := uuid.New()

	t.Run("refresh token carries its ID", func(t *testing.T) {
		tokenID, token, err := jwtService.GenerateRefreshToken(userID, "alice", model.RoleProvider)
		assert.NoError(t, err)

		extracted, err := jwtService.ExtractTokenID(token)
		assert.NoError(t, err)
		assert.Equal(t, tokenID, extracted)
	})

	t.Run("access token has no ID", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(userID, "alice", model.RoleProvider)
		assert.NoError(t, err)

		_, err = jwtService.ExtractTokenID(token)
		assert.Error(t, err)
	})
}
