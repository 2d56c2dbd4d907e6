package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicematch/internal/model"
)

// MatchRequestRepository defines match request persistence operations.
type MatchRequestRepository interface {
	Create(ctx context.Context, request *model.MatchRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MatchRequest, error)
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]model.MatchRequest, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.MatchRequest, error)
	ExistsPending(ctx context.Context, seekerID, providerID, serviceID uuid.UUID) (bool, error)
	// UpdateStatusFromPending flips the status only while the row is still
	// pending; it reports false when another transition won the race.
	UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status model.MatchStatus) (bool, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MatchRequestRepository) error) error
}

type matchRequestRepository struct {
	db *gorm.DB
}

// NewMatchRequestRepository creates a new match request repository.
func NewMatchRequestRepository(db *gorm.DB) MatchRequestRepository {
	return &matchRequestRepository{db: db}
}

func (r *matchRequestRepository) Create(ctx context.Context, request *model.MatchRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *matchRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MatchRequest, error) {
	var request model.MatchRequest
	if err := r.db.WithContext(ctx).
		Preload("Seeker").
		Preload("Provider").
		Preload("Service").
		Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *matchRequestRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]model.MatchRequest, error) {
	var requests []model.MatchRequest
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Service").
		Where("seeker_id = ?", seekerID).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *matchRequestRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.MatchRequest, error) {
	var requests []model.MatchRequest
	if err := r.db.WithContext(ctx).
		Preload("Seeker").
		Preload("Service").
		Where("provider_id = ?", providerID).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *matchRequestRepository) ExistsPending(ctx context.Context, seekerID, providerID, serviceID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.MatchRequest{}).
		Where("seeker_id = ? AND provider_id = ? AND service_id = ? AND status = ?",
			seekerID, providerID, serviceID, model.MatchStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *matchRequestRepository) UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status model.MatchStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.MatchRequest{}).
		Where("id = ? AND status = ?", id, model.MatchStatusPending).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// WithTransaction executes a function within a database transaction.
func (r *matchRequestRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MatchRequestRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &matchRequestRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
