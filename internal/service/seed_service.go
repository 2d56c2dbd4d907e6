package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"servicematch/internal/model"
	"servicematch/internal/repository"
)

// demoPassword is the password for all seeded demo accounts.
const demoPassword = "demo-pass-123"

// SeedService provisions demo fixtures: a few categories, one seeker, one
// provider, and that provider's services. Seeding is idempotent; existing
// rows are left untouched.
type SeedService interface {
	SeedDemo(ctx context.Context) (created int, err error)
}

type seedService struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	serviceRepo  repository.ServiceRepository
}

// NewSeedService creates a new seed service.
func NewSeedService(
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	serviceRepo repository.ServiceRepository,
) SeedService {
	return &seedService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
	}
}

type demoService struct {
	category     string
	name         string
	description  string
	price        string
	availability model.Availability
}

var demoCategories = []model.ServiceCategory{
	{Name: "Grooming", Description: "Personal grooming and styling"},
	{Name: "Tutoring", Description: "Private lessons and coaching"},
	{Name: "Home Repair", Description: "Household maintenance and repair"},
}

var demoServices = []demoService{
	{category: "Grooming", name: "Haircut", description: "Classic haircut, 30 minutes", price: "20.00", availability: model.AvailabilityOffline},
	{category: "Tutoring", name: "Math Tutoring", description: "One hour of algebra or calculus", price: "35.00", availability: model.AvailabilityOnline},
	{category: "Home Repair", name: "Furniture Assembly", description: "Flat-pack assembly per item", price: "45.50", availability: model.AvailabilityBoth},
}

// SeedDemo provisions the demo fixtures and reports how many rows it created.
func (s *seedService) SeedDemo(ctx context.Context) (int, error) {
	created := 0

	categories := make(map[string]*model.ServiceCategory, len(demoCategories))
	for i := range demoCategories {
		fixture := demoCategories[i]
		existing, err := s.categoryRepo.FindByName(ctx, fixture.Name)
		if err == nil {
			categories[fixture.Name] = existing
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("check category %q: %w", fixture.Name, err)
		}
		if err := s.categoryRepo.Create(ctx, &fixture); err != nil {
			return created, fmt.Errorf("create category %q: %w", fixture.Name, err)
		}
		categories[fixture.Name] = &fixture
		created++
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return created, fmt.Errorf("hash demo password: %w", err)
	}

	_, n, err := s.ensureUser(ctx, &model.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleSeeker,
		Location:     "Berlin",
		Active:       true,
	})
	if err != nil {
		return created, err
	}
	created += n

	provider, n, err := s.ensureUser(ctx, &model.User{
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleProvider,
		Location:     "Berlin",
		Bio:          "Demo provider account",
		Active:       true,
	})
	if err != nil {
		return created, err
	}
	created += n

	existing, err := s.serviceRepo.ListByProvider(ctx, provider.ID)
	if err != nil {
		return created, fmt.Errorf("list provider services: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, svc := range existing {
		have[svc.Name] = true
	}

	for _, fixture := range demoServices {
		if have[fixture.name] {
			continue
		}
		price, err := decimal.NewFromString(fixture.price)
		if err != nil {
			return created, fmt.Errorf("parse price for %q: %w", fixture.name, err)
		}
		category := categories[fixture.category]
		svc := &model.Service{
			ProviderID:   provider.ID,
			CategoryID:   &category.ID,
			Name:         fixture.name,
			Description:  fixture.description,
			Price:        price,
			Availability: fixture.availability,
			IsActive:     true,
		}
		if err := s.serviceRepo.Create(ctx, svc); err != nil {
			return created, fmt.Errorf("create service %q: %w", fixture.name, err)
		}
		created++
	}

	return created, nil
}

func (s *seedService) ensureUser(ctx context.Context, user *model.User) (*model.User, int, error) {
	existing, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err == nil {
		return existing, 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, fmt.Errorf("check user %q: %w", user.Username, err)
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, 0, fmt.Errorf("create user %q: %w", user.Username, err)
	}
	return user, 1, nil
}
