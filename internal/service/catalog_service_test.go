package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "servicematch/internal/errors"
	"servicematch/internal/model"
)

func TestCatalogService_CreateCategory(t *testing.T) {
	tests := []struct {
		name          string
		categoryName  string
		setupMock     func(*MockCategoryRepository)
		expectedError error
	}{
		{
			name:         "successful creation",
			categoryName: "Grooming",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Grooming").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.ServiceCategory")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:         "duplicate name",
			categoryName: "Grooming",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Grooming").Return(&model.ServiceCategory{Name: "Grooming"}, nil)
			},
			expectedError: apperrors.ErrCategoryExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategoryRepo := new(MockCategoryRepository)
			tt.setupMock(mockCategoryRepo)

			service := NewCatalogService(mockCategoryRepo, new(MockServiceRepository), nil)
			category, err := service.CreateCategory(context.Background(), tt.categoryName, "description")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, category)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, category)
				assert.Equal(t, tt.categoryName, category.Name)
			}

			mockCategoryRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	categoryID := uuid.New()

	t.Run("unknown category", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, categoryID).Return(nil, gorm.ErrRecordNotFound)

		service := NewCatalogService(mockCategoryRepo, new(MockServiceRepository), nil)
		err := service.DeleteCategory(context.Background(), categoryID)

		assert.Equal(t, apperrors.ErrCategoryNotFound, err)
	})

	t.Run("successful deletion", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, categoryID).Return(&model.ServiceCategory{ID: categoryID}, nil)
		mockCategoryRepo.On("Delete", mock.Anything, categoryID).Return(nil)

		service := NewCatalogService(mockCategoryRepo, new(MockServiceRepository), nil)
		assert.NoError(t, service.DeleteCategory(context.Background(), categoryID))
		mockCategoryRepo.AssertExpectations(t)
	})
}

func TestCatalogService_CreateService(t *testing.T) {
	providerID := uuid.New()
	categoryID := uuid.New()
	serviceID := uuid.New()
	price := decimal.NewFromFloat(20.00)

	tests := []struct {
		name          string
		input         ServiceInput
		setupMock     func(*MockCategoryRepository, *MockServiceRepository)
		expectedError error
	}{
		{
			name: "successful creation",
			input: ServiceInput{
				CategoryID:   &categoryID,
				Name:         "Haircut",
				Price:        price,
				Availability: model.AvailabilityOffline,
			},
			setupMock: func(mCat *MockCategoryRepository, mSvc *MockServiceRepository) {
				mCat.On("FindByID", mock.Anything, categoryID).Return(&model.ServiceCategory{ID: categoryID, Name: "Grooming"}, nil)
				mSvc.On("Create", mock.Anything, mock.AnythingOfType("*model.Service")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.Service).ID = serviceID
					}).Return(nil)
				mSvc.On("FindByID", mock.Anything, serviceID).Return(&model.Service{
					ID:           serviceID,
					ProviderID:   providerID,
					CategoryID:   &categoryID,
					Name:         "Haircut",
					Price:        price,
					Availability: model.AvailabilityOffline,
					IsActive:     true,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name: "missing category",
			input: ServiceInput{
				Name:         "Haircut",
				Price:        price,
				Availability: model.AvailabilityOffline,
			},
			setupMock:     func(mCat *MockCategoryRepository, mSvc *MockServiceRepository) {},
			expectedError: apperrors.ErrCategoryRequired,
		},
		{
			name: "unknown category",
			input: ServiceInput{
				CategoryID:   &categoryID,
				Name:         "Haircut",
				Price:        price,
				Availability: model.AvailabilityOffline,
			},
			setupMock: func(mCat *MockCategoryRepository, mSvc *MockServiceRepository) {
				mCat.On("FindByID", mock.Anything, categoryID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategoryRepo := new(MockCategoryRepository)
			mockServiceRepo := new(MockServiceRepository)
			tt.setupMock(mockCategoryRepo, mockServiceRepo)

			service := NewCatalogService(mockCategoryRepo, mockServiceRepo, nil)
			created, err := service.CreateService(context.Background(), providerID, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, providerID, created.ProviderID)
				assert.True(t, created.IsActive)
			}

			mockCategoryRepo.AssertExpectations(t)
			mockServiceRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_UpdateService(t *testing.T) {
	ownerID := uuid.New()
	serviceID := uuid.New()

	existing := func() *model.Service {
		return &model.Service{
			ID:           serviceID,
			ProviderID:   ownerID,
			Name:         "Haircut",
			Price:        decimal.NewFromFloat(20.00),
			Availability: model.AvailabilityOffline,
			IsActive:     true,
		}
	}

	t.Run("owner updates price and deactivates", func(t *testing.T) {
		newPrice := decimal.NewFromFloat(25.00)
		inactive := false

		mockServiceRepo := new(MockServiceRepository)
		mockServiceRepo.On("FindByID", mock.Anything, serviceID).Return(existing(), nil)
		mockServiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Service")).Return(nil)

		service := NewCatalogService(new(MockCategoryRepository), mockServiceRepo, nil)
		updated, err := service.UpdateService(context.Background(), ownerID, serviceID, ServiceUpdate{
			Price:    &newPrice,
			IsActive: &inactive,
		})

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.True(t, newPrice.Equal(updated.Price))
		assert.False(t, updated.IsActive)
		assert.Equal(t, "Haircut", updated.Name)
		mockServiceRepo.AssertExpectations(t)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		mockServiceRepo := new(MockServiceRepository)
		mockServiceRepo.On("FindByID", mock.Anything, serviceID).Return(existing(), nil)

		service := NewCatalogService(new(MockCategoryRepository), mockServiceRepo, nil)
		updated, err := service.UpdateService(context.Background(), uuid.New(), serviceID, ServiceUpdate{})

		assert.Equal(t, apperrors.ErrNotServiceOwner, err)
		assert.Nil(t, updated)
	})

	t.Run("unknown service", func(t *testing.T) {
		mockServiceRepo := new(MockServiceRepository)
		mockServiceRepo.On("FindByID", mock.Anything, serviceID).Return(nil, gorm.ErrRecordNotFound)

		service := NewCatalogService(new(MockCategoryRepository), mockServiceRepo, nil)
		updated, err := service.UpdateService(context.Background(), ownerID, serviceID, ServiceUpdate{})

		assert.Equal(t, apperrors.ErrServiceNotFound, err)
		assert.Nil(t, updated)
	})
}
