package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"servicematch/internal/config"
	"servicematch/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	serviceHandler *handler.ServiceHandler,
	matchHandler *handler.MatchHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/users/register", authHandler.Register) // alias registration endpoint
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)

	api.GET("/services", serviceHandler.ListServices)
	api.GET("/services/:id", serviceHandler.GetService)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", userHandler.Me)
	secured.PATCH("/users/me", userHandler.UpdateMe)

	// Catalog routes
	secured.GET("/service-categories", categoryHandler.ListCategories)
	secured.POST("/service-categories", categoryHandler.CreateCategory)
	secured.GET("/service-categories/:id", categoryHandler.GetCategory)
	secured.DELETE("/service-categories/:id", categoryHandler.DeleteCategory)
	secured.POST("/services", serviceHandler.CreateService)
	secured.PUT("/services/:id", serviceHandler.UpdateService)

	// Match request routes
	secured.GET("/match-requests", matchHandler.ListMatchRequests)
	secured.POST("/match-requests", matchHandler.CreateMatchRequest)
	secured.PATCH("/match-requests/:id", matchHandler.UpdateMatchStatus)
	secured.POST("/match-requests/find_matches", matchHandler.FindMatches)

	// Demo data
	secured.GET("/seed/demo", seedHandler.SeedDemo)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
