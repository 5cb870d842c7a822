package respond

import (
	"errors"
	"net/http"

	"github.com/bright-coral-crab/tooldeck/internal/store"
)

// Error represents an API error response.
type Error struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Details []store.FieldError `json:"details,omitempty"`
	Status  int                `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

// Common error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodePermissionDenied   = "PERMISSION_DENIED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodePersistenceFailure = "PERSISTENCE_FAILURE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Standard errors
var (
	ErrUnauthorized = &Error{
		Code:    ErrCodeUnauthorized,
		Message: "Invalid credentials",
		Status:  http.StatusUnauthorized,
	}

	ErrInvalidToken = &Error{
		Code:    ErrCodeUnauthorized,
		Message: "Invalid or expired token",
		Status:  http.StatusUnauthorized,
	}

	ErrInternalServer = &Error{
		Code:    ErrCodeInternalError,
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}
)

// NewBadRequest creates a bad request error with custom message.
func NewBadRequest(message string) *Error {
	return &Error{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// FromStoreError translates a store error into its API shape. The four
// domain error kinds map to distinct codes so the client can tell "no
// access" from "no data" from "bad input".
func FromStoreError(err error) *Error {
	var pe *store.PermissionError
	if errors.As(err, &pe) {
		return &Error{
			Code:    ErrCodePermissionDenied,
			Message: pe.Error(),
			Status:  http.StatusForbidden,
		}
	}

	var ve *store.ValidationError
	if errors.As(err, &ve) {
		return &Error{
			Code:    ErrCodeValidationFailed,
			Message: "One or more fields are invalid",
			Details: ve.Fields,
			Status:  http.StatusBadRequest,
		}
	}

	var ne *store.NotFoundError
	if errors.As(err, &ne) {
		return &Error{
			Code:    ErrCodeNotFound,
			Message: ne.Error(),
			Status:  http.StatusNotFound,
		}
	}

	var fe *store.PersistenceError
	if errors.As(err, &fe) {
		return &Error{
			Code:    ErrCodePersistenceFailure,
			Message: "Durable store operation failed",
			Status:  http.StatusInternalServerError,
		}
	}

	return ErrInternalServer
}
