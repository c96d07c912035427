package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorf creates a new domain error with a formatted message
func NewDomainErrorf(code, format string, args ...any) *DomainError {
	return &DomainError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrAlreadyReturned     = NewDomainError("ALREADY_RETURNED", "Invoice has already been returned")
	ErrTenantRequired      = NewDomainError("TENANT_REQUIRED", "Tenant scope is required")
)

// NewNotFoundError creates a NOT_FOUND error naming the entity and its id
func NewNotFoundError(entity string, id any) *DomainError {
	return NewDomainErrorf("NOT_FOUND", "%s with id %v was not found", entity, id)
}

// NewInsufficientStockError creates an INSUFFICIENT_STOCK error naming the
// product and the quantity still on hand
func NewInsufficientStockError(productName string, available int) *DomainError {
	return NewDomainErrorf("INSUFFICIENT_STOCK", "Not enough stock for '%s'. Available: %d", productName, available)
}

// IsCode reports whether err is a DomainError carrying the given code
func IsCode(err error, code string) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == code
}
