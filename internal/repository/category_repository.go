package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicematch/internal/model"
)

// CategoryRepository defines service category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.ServiceCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ServiceCategory, error)
	FindByName(ctx context.Context, name string) (*model.ServiceCategory, error)
	List(ctx context.Context) ([]model.ServiceCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.ServiceCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ServiceCategory, error) {
	var category model.ServiceCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.ServiceCategory, error) {
	var category model.ServiceCategory
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.ServiceCategory, error) {
	var categories []model.ServiceCategory
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete removes a category; dependent services keep their rows with a
// nulled category reference.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Service{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ServiceCategory{}, "id = ?", id).Error
	})
}
