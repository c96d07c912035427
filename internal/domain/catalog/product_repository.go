package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	SaveWithLock(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*Product, error)
	// FindByIDForUpdate loads the product with a row-level write lock so
	// check-then-mutate stock sequences serialize across transactions.
	FindByIDForUpdate(ctx context.Context, id, tenantID uuid.UUID) (*Product, error)
	FindByBarcode(ctx context.Context, barcode string, tenantID uuid.UUID) (*Product, error)
	FindByName(ctx context.Context, name string, tenantID uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Product], error)
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*Product, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]*Product, error)
	FindLowStock(ctx context.Context, tenantID uuid.UUID, limit int) ([]*Product, error)
	CountByCategory(ctx context.Context, categoryID, tenantID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}
