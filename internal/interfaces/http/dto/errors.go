package dto

import (
	"errors"
	"net/http"

	"github.com/retailpos/backend/internal/domain/shared"
)

// Error codes returned by the API layer itself
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// errorCodeStatus maps domain error codes to HTTP status codes
var errorCodeStatus = map[string]int{
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"INVALID_STATE":        http.StatusConflict,
	"INSUFFICIENT_STOCK":   http.StatusConflict,
	"ALREADY_RETURNED":     http.StatusConflict,
	"TENANT_REQUIRED":      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// StatusForCode returns the HTTP status for an error code, 500 when unknown
func StatusForCode(code string) int {
	if status, ok := errorCodeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromError translates an error into an API error code, message and status.
// Domain errors keep their code and message; anything else is reported as an
// internal error without leaking details to the client.
func FromError(err error) (code, message string, status int) {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de.Code, de.Message, StatusForCode(de.Code)
	}
	return ErrCodeInternal, "An internal error occurred", http.StatusInternalServerError
}
