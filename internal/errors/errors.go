package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when username or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when the password is incorrect.
	ErrInvalidCredentials = errors.New("invalid password")
	// ErrAccountInactive is returned when an inactive account tries to log in.
	ErrAccountInactive = errors.New("user account is not active")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("password fields didn't match")
	// ErrWeakPassword is returned when the password fails strength validation.
	ErrWeakPassword = errors.New("password must be at least 8 characters and not entirely numeric")
	// ErrInvalidRole is returned when a role outside seeker/provider is supplied.
	ErrInvalidRole = errors.New("invalid user role")

	// ErrCategoryNotFound is returned when a service category does not exist.
	ErrCategoryNotFound = errors.New("service category not found")
	// ErrCategoryRequired is returned when a service is created without a category.
	ErrCategoryRequired = errors.New("category id is required")
	// ErrCategoryExists is returned when a category name is already taken.
	ErrCategoryExists = errors.New("service category already exists")
	// ErrServiceNotFound is returned when a service does not exist.
	ErrServiceNotFound = errors.New("service not found")
	// ErrNotServiceOwner is returned when a caller edits a service they do not own.
	ErrNotServiceOwner = errors.New("service does not belong to caller")

	// ErrInvalidProvider is returned when the target user is not a provider.
	ErrInvalidProvider = errors.New("invalid provider selected")
	// ErrServiceOwnership is returned when the service does not belong to the chosen provider.
	ErrServiceOwnership = errors.New("selected service does not belong to the chosen provider")
	// ErrDuplicatePending is returned when a pending request already exists for the triple.
	ErrDuplicatePending = errors.New("a pending request for this service already exists")
	// ErrRequestNotFound is returned when a match request does not exist.
	ErrRequestNotFound = errors.New("match request not found")
	// ErrSeekerForbidden is returned when a seeker attempts a status transition.
	ErrSeekerForbidden = errors.New("seekers cannot update match request status")
	// ErrNotRequestProvider is returned when a provider acts on another provider's request.
	ErrNotRequestProvider = errors.New("match request belongs to another provider")
	// ErrNotPending is returned when transitioning a request that is no longer pending.
	ErrNotPending = errors.New("can only update status from pending state")
	// ErrInvalidStatus is returned for transition targets outside accepted/rejected.
	ErrInvalidStatus = errors.New("invalid status, allowed: accepted, rejected")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	// Details carries optional field-level context, e.g. the list of valid
	// categories when an unknown category is supplied.
	Details interface{} `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// collapses to a generic 500 so internal error text never reaches callers.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrAccountInactive):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_INACTIVE")
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrCategoryRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_REQUIRED")
	case errors.Is(err, ErrCategoryExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_EXISTS")
	case errors.Is(err, ErrServiceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SERVICE_NOT_FOUND")
	case errors.Is(err, ErrNotServiceOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_SERVICE_OWNER")
	case errors.Is(err, ErrInvalidProvider):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PROVIDER")
	case errors.Is(err, ErrServiceOwnership):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SERVICE_OWNERSHIP")
	case errors.Is(err, ErrDuplicatePending):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_PENDING")
	case errors.Is(err, ErrRequestNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REQUEST_NOT_FOUND")
	case errors.Is(err, ErrSeekerForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "SEEKER_FORBIDDEN")
	case errors.Is(err, ErrNotRequestProvider):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_REQUEST_PROVIDER")
	case errors.Is(err, ErrNotPending):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_PENDING")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
