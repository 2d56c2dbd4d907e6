package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"servicematch/internal/model"
)

// ServiceFilter carries the optional matching criteria. Zero-valued fields
// are skipped; the active-only restriction always applies.
type ServiceFilter struct {
	Category     string
	MaxPrice     *decimal.Decimal
	Availability model.Availability
}

// ServiceRepository defines service persistence operations.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	Update(ctx context.Context, service *model.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Service, error)
	FindMatching(ctx context.Context, filter ServiceFilter) ([]model.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	var service model.Service
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Category").
		Where("id = ?", id).First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Category").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("provider_id = ?", providerID).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// FindMatching applies each filter only if present (AND semantics) and
// always restricts to active services.
func (r *serviceRepository) FindMatching(ctx context.Context, filter ServiceFilter) ([]model.Service, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Service{}).
		Preload("Provider").
		Preload("Category").
		Where("services.is_active = ?", true)

	if filter.Category != "" {
		query = query.
			Joins("JOIN service_categories ON service_categories.id = services.category_id").
			Where("service_categories.name = ?", filter.Category)
	}
	if filter.MaxPrice != nil {
		query = query.Where("services.price <= ?", *filter.MaxPrice)
	}
	if filter.Availability != "" {
		query = query.Where("services.availability = ?", filter.Availability)
	}

	var services []model.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
