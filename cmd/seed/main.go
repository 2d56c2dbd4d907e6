package main

import (
	"context"
	"log"

	"servicematch/internal/config"
	"servicematch/internal/db"
	"servicematch/internal/model"
	"servicematch/internal/repository"
	"servicematch/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ServiceCategory{},
		&model.Service{},
		&model.MatchRequest{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)

	seedService := service.NewSeedService(userRepo, categoryRepo, serviceRepo)

	created, err := seedService.SeedDemo(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Rows created: %d", created)
	log.Println("Demo accounts: alice (seeker), bob (provider)")
}
