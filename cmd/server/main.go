package main

import (
	"log"
	"net/http"
	"os"

	_ "servicematch/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"servicematch/internal/auth"
	"servicematch/internal/cache"
	"servicematch/internal/config"
	"servicematch/internal/db"
	"servicematch/internal/handler"
	"servicematch/internal/model"
	"servicematch/internal/repository"
	"servicematch/internal/router"
	"servicematch/internal/service"
)

// @title ServiceMatch API
// @version 1.0
// @description Marketplace backend connecting service seekers with providers: catalog, matching, and match request lifecycle with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.MatchRequest{},
			&model.Service{},
			&model.ServiceCategory{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ServiceCategory{},
		&model.Service{},
		&model.MatchRequest{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	matchRepo := repository.NewMatchRequestRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	catalogService := service.NewCatalogService(categoryRepo, serviceRepo, cacheClient)
	matchService := service.NewMatchService(userRepo, serviceRepo, matchRepo)
	matchingService := service.NewMatchingService(userRepo, serviceRepo)
	seedService := service.NewSeedService(userRepo, categoryRepo, serviceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	matchHandler := handler.NewMatchHandler(matchService, matchingService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		categoryHandler,
		serviceHandler,
		matchHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
