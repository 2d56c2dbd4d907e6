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

// MatchHandler handles match request lifecycle and matching endpoints.
type MatchHandler struct {
	matchService    service.MatchService
	matchingService service.MatchingService
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(matchService service.MatchService, matchingService service.MatchingService) *MatchHandler {
	return &MatchHandler{
		matchService:    matchService,
		matchingService: matchingService,
	}
}

// CreateMatchRequestRequest represents a match request creation payload.
// Seeker and status are always taken from the authenticated caller and are
// never client-supplied.
type CreateMatchRequestRequest struct {
	ProviderID string `json:"provider_id" validate:"required,uuid"`
	ServiceID  string `json:"service_id" validate:"required,uuid"`
}

// UpdateMatchStatusRequest represents a status transition payload.
type UpdateMatchStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// FindMatchesRequest represents the matching criteria configuration.
type FindMatchesRequest struct {
	Category     string `json:"category"`
	MaxPrice     string `json:"max_price"`
	Availability string `json:"availability_type" validate:"omitempty,oneof=online offline both"`
}

// ListMatchRequests godoc
// @Summary List match requests visible to the caller
// @Tags match-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MatchRequest
// @Failure 401 {object} errors.ErrorResponse
// @Router /match-requests [get]
func (h *MatchHandler) ListMatchRequests(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	requests, err := h.matchService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, requests)
}

// CreateMatchRequest godoc
// @Summary Create a match request for a provider's service
// @Tags match-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMatchRequestRequest true "Match request data"
// @Success 201 {object} model.MatchRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /match-requests [post]
func (h *MatchHandler) CreateMatchRequest(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	var req CreateMatchRequestRequest
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

	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid provider_id",
			Code:  "INVALID_UUID",
		})
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid service_id",
			Code:  "INVALID_UUID",
		})
	}

	request, err := h.matchService.Create(c.Request().Context(), claims.UserID, providerID, serviceID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, request)
}

// UpdateMatchStatus godoc
// @Summary Transition a pending match request to accepted or rejected
// @Tags match-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match request ID"
// @Param request body UpdateMatchStatusRequest true "Target status"
// @Success 200 {object} model.MatchRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /match-requests/{id} [patch]
func (h *MatchHandler) UpdateMatchStatus(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid match request id",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateMatchStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "status is required for update",
			Code:  "VALIDATION_ERROR",
		})
	}

	request, err := h.matchService.UpdateStatus(c.Request().Context(), claims.UserID, id, model.MatchStatus(req.Status))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, request)
}

// FindMatches godoc
// @Summary Find matching services with compatibility scores
// @Tags match-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FindMatchesRequest true "Matching criteria"
// @Success 200 {array} service.MatchResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /match-requests/find_matches [post]
func (h *MatchHandler) FindMatches(c echo.Context) error {
	claims, err := actorClaims(c)
	if err != nil {
		return err
	}

	var req FindMatchesRequest
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

	criteria := service.MatchCriteria{
		Category:     req.Category,
		Availability: model.Availability(req.Availability),
	}
	if req.MaxPrice != "" {
		maxPrice, err := decimal.NewFromString(req.MaxPrice)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid max_price",
				Code:  "INVALID_PRICE",
			})
		}
		criteria.MaxPrice = &maxPrice
	}

	matches, err := h.matchingService.FindMatches(c.Request().Context(), claims.UserID, criteria)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, matches)
}
