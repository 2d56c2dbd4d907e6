package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"servicematch/internal/model"
)

// Actor identifies the authenticated caller for authorization checks.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Role     model.UserRole
}

// actorClaims extracts the authenticated caller from the token parsed by the
// JWT middleware.
func actorClaims(c echo.Context) (*Actor, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &Actor{
		UserID:   userID,
		Username: username,
		Role:     model.UserRole(role),
	}, nil
}
