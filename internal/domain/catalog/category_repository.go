package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
)

// CategoryRepository defines the persistence interface for categories
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string, tenantID uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Category], error)
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}
