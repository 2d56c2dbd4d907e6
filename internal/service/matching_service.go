package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "servicematch/internal/errors"
	"servicematch/internal/model"
	"servicematch/internal/repository"
)

// MatchCriteria is the seeker-supplied search configuration. Absent fields
// are not filtered on.
type MatchCriteria struct {
	Category     string
	MaxPrice     *decimal.Decimal
	Availability model.Availability
}

// MatchResult pairs a matching service with the seeker/provider
// compatibility score.
type MatchResult struct {
	Service    model.Service `json:"service"`
	MatchScore int           `json:"match_score"`
}

// MatchingService discovers candidate services and scores provider
// compatibility.
type MatchingService interface {
	FindMatchingServices(ctx context.Context, criteria MatchCriteria) ([]model.Service, error)
	FindMatches(ctx context.Context, actorID uuid.UUID, criteria MatchCriteria) ([]MatchResult, error)
}

type matchingService struct {
	userRepo    repository.UserRepository
	serviceRepo repository.ServiceRepository
	scorer      *MatchScorer
}

// NewMatchingService creates a new matching service.
func NewMatchingService(userRepo repository.UserRepository, serviceRepo repository.ServiceRepository) MatchingService {
	return &matchingService{
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		scorer:      NewMatchScorer(),
	}
}

// FindMatchingServices filters the catalog by the provided criteria with AND
// semantics; only active services are ever returned.
func (s *matchingService) FindMatchingServices(ctx context.Context, criteria MatchCriteria) ([]model.Service, error) {
	return s.serviceRepo.FindMatching(ctx, repository.ServiceFilter{
		Category:     criteria.Category,
		MaxPrice:     criteria.MaxPrice,
		Availability: criteria.Availability,
	})
}

// FindMatches runs the catalog filter, scores each result's provider against
// the actor, and returns the pairs sorted by descending score. The sort is
// stable, so ties keep the catalog's iteration order.
func (s *matchingService) FindMatches(ctx context.Context, actorID uuid.UUID, criteria MatchCriteria) ([]MatchResult, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}

	services, err := s.FindMatchingServices(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("find matching services: %w", err)
	}

	results := make([]MatchResult, 0, len(services))
	for _, service := range services {
		provider := service.Provider
		results = append(results, MatchResult{
			Service:    service,
			MatchScore: s.scorer.Score(actor, &provider),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results, nil
}
