package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/armoury/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeArmourNotFound   = "ARMOUR_NOT_FOUND"
	CodeWeaponNotFound   = "WEAPON_NOT_FOUND"
	CodePropertyNotFound = "PROPERTY_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusOf returns the HTTP status WriteError would use for err
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrArmourNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeArmourNotFound, "Armour not found"}}
	case errors.Is(err, model.ErrWeaponNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWeaponNotFound, "Weapon not found"}}
	case errors.Is(err, model.ErrPropertyNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePropertyNotFound, "Weapon property not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
