package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "servicematch/internal/errors"
	"servicematch/internal/model"
	"servicematch/internal/service"
)

// ServiceHandler handles service listing endpoints.
type ServiceHandler struct {
	catalogService service.CatalogService
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(catalogService service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// CreateServiceRequest represents a service creation request.
type CreateServiceRequest struct {
	CategoryID   string `json:"category_id" validate:"required,uuid"`
	Name         string `json:"name" validate:"required,max=200"`
	Description  string `json:"description"`
	Price        string `json:"price" validate:"required"`
	Availability string `json:"availability_type" validate:"required,oneof=online offline both"`
}

// UpdateServiceRequest represents a service update request.
type UpdateServiceRequest struct {
	CategoryID   *string `json:"category_id" validate:"omitempty,uuid"`
	Name         *string `json:"name" validate:"omitempty,max=200"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
	Availability *string `json:"availability_type" validate:"omitempty,oneof=online offline both"`
	IsActive     *bool   `json:"is_active"`
}

// categoryError enriches category failures with the list of valid
// categories so callers can correct the request.
func (h *ServiceHandler) categoryError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	resp := httpErr.ToErrorResponse()
	if categories, listErr := h.catalogService.ListCategories(c.Request().Context()); listErr == nil {
		resp.Details = map[string]interface{}{"available_categories": categories}
	}
	return echo.NewHTTPError(httpErr.StatusCode, resp)
}

// ListServices godoc
// @Summary List all service listings
// @Tags services
// @Produce json
// @Success 200 {array} model.Service
// @Router /services [get]
func (h *ServiceHandler) ListServices(c echo.Context) error {
	services, err := h.catalogService.ListServices(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, services)
}

// GetService godoc
// @Summary Get a service listing by id
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid service id",
			Code:  "INVALID_UUID",
		})
	}

	svc, err := h.catalogService.GetService(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, svc)
}

// CreateService godoc
// @Summary Publish a service listing owned by the caller
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateServiceRequest true "Service data"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /services [post]
func (h *ServiceHandler) CreateService(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		if req.CategoryID == "" {
			return h.categoryError(c, apperrors.ErrCategoryRequired)
		}
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid category_id",
			Code:  "INVALID_UUID",
		})
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}

	svc, err := h.catalogService.CreateService(c.Request().Context(), claims.UserID, service.ServiceInput{
		CategoryID:   &categoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		Availability: model.Availability(req.Availability),
	})
	if err != nil {
		if err == apperrors.ErrCategoryRequired || err == apperrors.ErrCategoryNotFound {
			return h.categoryError(c, err)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, svc)
}

// UpdateService godoc
// @Summary Update a service listing owned by the caller
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body UpdateServiceRequest true "Service fields"
// @Success 200 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [put]
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid service id",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	update := service.ServiceUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid category_id",
				Code:  "INVALID_UUID",
			})
		}
		update.CategoryID = &categoryID
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid price",
				Code:  "INVALID_PRICE",
			})
		}
		update.Price = &price
	}
	if req.Availability != nil {
		availability := model.Availability(*req.Availability)
		update.Availability = &availability
	}

	svc, err := h.catalogService.UpdateService(c.Request().Context(), claims.UserID, id, update)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, svc)
}
