package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"servicematch/internal/cache"
	apperrors "servicematch/internal/errors"
	"servicematch/internal/model"
	"servicematch/internal/repository"
)

const serviceListCacheKey = "services:list"
const serviceListCacheTTL = 5 * time.Minute

// ServiceInput carries the fields for creating a service listing.
type ServiceInput struct {
	CategoryID   *uuid.UUID
	Name         string
	Description  string
	Price        decimal.Decimal
	Availability model.Availability
}

// ServiceUpdate carries the mutable listing fields; nil means unchanged.
type ServiceUpdate struct {
	CategoryID   *uuid.UUID
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	Availability *model.Availability
	IsActive     *bool
}

// CatalogService manages service categories and provider listings.
type CatalogService interface {
	CreateCategory(ctx context.Context, name, description string) (*model.ServiceCategory, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*model.ServiceCategory, error)
	ListCategories(ctx context.Context) ([]model.ServiceCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateService(ctx context.Context, providerID uuid.UUID, input ServiceInput) (*model.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*model.Service, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	UpdateService(ctx context.Context, actorID, serviceID uuid.UUID, update ServiceUpdate) (*model.Service, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	serviceRepo  repository.ServiceRepository
	cache        *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	serviceRepo repository.ServiceRepository,
	cache *cache.Client,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
		cache:        cache,
	}
}

// CreateCategory creates a category with a unique name.
func (s *catalogService) CreateCategory(ctx context.Context, name, description string) (*model.ServiceCategory, error) {
	if existing, err := s.categoryRepo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, apperrors.ErrCategoryExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check category: %w", err)
	}

	category := &model.ServiceCategory{
		Name:        name,
		Description: description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*model.ServiceCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.ServiceCategory, error) {
	return s.categoryRepo.List(ctx)
}

// DeleteCategory removes a category; dependent services are left in place
// with a nulled category reference.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	_ = s.cache.Delete(ctx, serviceListCacheKey)
	return nil
}

// CreateService publishes a listing owned by the calling provider. The
// category is mandatory and must exist.
func (s *catalogService) CreateService(ctx context.Context, providerID uuid.UUID, input ServiceInput) (*model.Service, error) {
	if input.CategoryID == nil {
		return nil, apperrors.ErrCategoryRequired
	}
	if _, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("check category: %w", err)
	}

	service := &model.Service{
		ProviderID:   providerID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Availability: input.Availability,
		IsActive:     true,
	}
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	_ = s.cache.Delete(ctx, serviceListCacheKey)

	created, err := s.serviceRepo.FindByID(ctx, service.ID)
	if err != nil {
		return service, nil
	}
	return created, nil
}

func (s *catalogService) GetService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, err
	}
	return service, nil
}

// ListServices lists all services with read-side caching.
func (s *catalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	if data, _ := s.cache.Get(ctx, serviceListCacheKey); data != nil {
		var cached []model.Service
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(services); err == nil {
		_ = s.cache.Set(ctx, serviceListCacheKey, payload, serviceListCacheTTL)
	}
	return services, nil
}

// UpdateService mutates a listing; only its owner may do so. Deactivation
// goes through IsActive rather than deletion.
func (s *catalogService) UpdateService(ctx context.Context, actorID, serviceID uuid.UUID, update ServiceUpdate) (*model.Service, error) {
	service, err := s.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.ProviderID != actorID {
		return nil, apperrors.ErrNotServiceOwner
	}

	if update.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *update.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("check category: %w", err)
		}
		service.CategoryID = update.CategoryID
	}
	if update.Name != nil {
		service.Name = *update.Name
	}
	if update.Description != nil {
		service.Description = *update.Description
	}
	if update.Price != nil {
		service.Price = *update.Price
	}
	if update.Availability != nil {
		service.Availability = *update.Availability
	}
	if update.IsActive != nil {
		service.IsActive = *update.IsActive
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	_ = s.cache.Delete(ctx, serviceListCacheKey)
	return service, nil
}
