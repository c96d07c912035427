// Package tenant carries the authenticated tenant through request handling.
// Every repository call takes an explicit tenant id; this package is the
// single place that extracts and validates it from the request context so
// cross-tenant access cannot happen by omission.
package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTenantRequired is returned when no tenant id is present in the context
var ErrTenantRequired = errors.New("tenant id is required but not found in context")

// ErrInvalidTenantID is returned when the tenant id is not a valid UUID
var ErrInvalidTenantID = errors.New("invalid tenant id format")

type contextKey struct{}

// WithTenant returns a context carrying the tenant id
func WithTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, tenantID)
}

// FromContext extracts the tenant id from the context
func FromContext(ctx context.Context) (uuid.UUID, error) {
	tenantID, ok := ctx.Value(contextKey{}).(uuid.UUID)
	if !ok || tenantID == uuid.Nil {
		return uuid.Nil, ErrTenantRequired
	}
	return tenantID, nil
}

// Parse validates a raw tenant id header value
func Parse(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, ErrTenantRequired
	}
	tenantID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidTenantID
	}
	return tenantID, nil
}
