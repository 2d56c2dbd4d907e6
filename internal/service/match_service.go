package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicematch/internal/auth"
	apperrors "servicematch/internal/errors"
	"servicematch/internal/model"
	"servicematch/internal/repository"
)

// MatchService handles the match request lifecycle.
type MatchService interface {
	Create(ctx context.Context, seekerID, providerID, serviceID uuid.UUID) (*model.MatchRequest, error)
	UpdateStatus(ctx context.Context, actorID, requestID uuid.UUID, status model.MatchStatus) (*model.MatchRequest, error)
	List(ctx context.Context, actorID uuid.UUID) ([]model.MatchRequest, error)
}

type matchService struct {
	userRepo    repository.UserRepository
	serviceRepo repository.ServiceRepository
	matchRepo   repository.MatchRequestRepository
}

// NewMatchService creates a new match service.
func NewMatchService(
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
	matchRepo repository.MatchRequestRepository,
) MatchService {
	return &matchService{
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		matchRepo:   matchRepo,
	}
}

// Create records a seeker's request for a provider's service. The seeker is
// always the caller and the status always starts at pending, regardless of
// client-supplied values. Validation runs before anything is persisted; the
// duplicate-pending check and the insert share one transaction.
func (s *matchService) Create(ctx context.Context, seekerID, providerID, serviceID uuid.UUID) (*model.MatchRequest, error) {
	seeker, err := s.userRepo.FindByID(ctx, seekerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find seeker: %w", err)
	}
	if !auth.Allowed(seeker.Role, auth.OpCreateMatchRequest) {
		return nil, apperrors.ErrInvalidRole
	}

	provider, err := s.userRepo.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidProvider
		}
		return nil, fmt.Errorf("find provider: %w", err)
	}
	if provider.Role != model.RoleProvider {
		return nil, apperrors.ErrInvalidProvider
	}

	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	if service.ProviderID != providerID {
		return nil, apperrors.ErrServiceOwnership
	}

	request := &model.MatchRequest{
		SeekerID:   seekerID,
		ProviderID: providerID,
		ServiceID:  serviceID,
		Status:     model.MatchStatusPending,
	}

	err = s.matchRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.MatchRequestRepository) error {
		exists, err := txRepo.ExistsPending(ctx, seekerID, providerID, serviceID)
		if err != nil {
			return fmt.Errorf("check pending: %w", err)
		}
		if exists {
			return apperrors.ErrDuplicatePending
		}
		return txRepo.Create(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.matchRepo.FindByID(ctx, request.ID)
	if err != nil {
		return request, nil
	}
	return created, nil
}

// UpdateStatus transitions a pending request to accepted or rejected. Only
// the provider referenced on the request may do so; the pending guard is a
// conditional update so concurrent transitions cannot both win.
func (s *matchService) UpdateStatus(ctx context.Context, actorID, requestID uuid.UUID, status model.MatchStatus) (*model.MatchRequest, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}
	if !auth.Allowed(actor.Role, auth.OpUpdateMatchStatus) {
		return nil, apperrors.ErrSeekerForbidden
	}

	request, err := s.matchRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}

	if request.ProviderID != actorID {
		return nil, apperrors.ErrNotRequestProvider
	}
	if request.Status != model.MatchStatusPending {
		return nil, apperrors.ErrNotPending
	}
	if !status.TransitionTarget() {
		return nil, apperrors.ErrInvalidStatus
	}

	updated, err := s.matchRepo.UpdateStatusFromPending(ctx, requestID, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if !updated {
		// Lost a race: the row left pending between the read and the update.
		return nil, apperrors.ErrNotPending
	}

	result, err := s.matchRepo.FindByID(ctx, requestID)
	if err != nil {
		request.Status = status
		return request, nil
	}
	return result, nil
}

// List returns the requests visible to the actor: those they sent as seeker,
// those they received as provider, and nothing for any other role.
func (s *matchService) List(ctx context.Context, actorID uuid.UUID) ([]model.MatchRequest, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}

	switch actor.Role {
	case model.RoleSeeker:
		return s.matchRepo.ListBySeeker(ctx, actorID)
	case model.RoleProvider:
		return s.matchRepo.ListByProvider(ctx, actorID)
	default:
		return []model.MatchRequest{}, nil
	}
}
