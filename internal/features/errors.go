package features

import (
	"errors"
	"net/http"
)

// Domain errors for feature document operations.
var (
	ErrNotFound        = errors.New("feature not found")
	ErrDuplicate       = errors.New("feature already published for this version")
	ErrPayloadTooLarge = errors.New("payload exceeds maximum size")
	ErrInvalidPayload  = errors.New("invalid payload")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrPayloadTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidPayload) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
