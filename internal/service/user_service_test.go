package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "servicematch/internal/errors"
	"servicematch/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:       userID,
			Username: "alice",
			Role:     model.RoleSeeker,
		}, nil)

		service := NewUserService(mockRepo, nil)
		user, err := service.GetUser(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		user, err := service.GetUser(context.Background(), userID)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("updates only the provided fields", func(t *testing.T) {
		location := "Hamburg"

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:       userID,
			Username: "alice",
			Role:     model.RoleSeeker,
			Location: "Berlin",
			Phone:    "123456",
			Bio:      "hello",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo, nil)
		user, err := service.UpdateProfile(context.Background(), userID, ProfileUpdate{Location: &location})

		assert.NoError(t, err)
		assert.Equal(t, "Hamburg", user.Location)
		assert.Equal(t, "123456", user.Phone)
		assert.Equal(t, "hello", user.Bio)
		assert.Equal(t, model.RoleSeeker, user.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		user, err := service.UpdateProfile(context.Background(), userID, ProfileUpdate{})

		assert.Equal(t, apperrors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})
}
