package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"servicematch/internal/errors"
	"servicematch/internal/service"
)

// SeedHandler handles demo data seeding.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedDemoResponse represents the seed response.
type SeedDemoResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
}

// SeedDemo godoc
// @Summary Seed demo categories, users, and services
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedDemoResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	created, err := h.seedService.SeedDemo(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SeedDemoResponse{
		Message: "demo data seeded successfully",
		Created: created,
	})
}
