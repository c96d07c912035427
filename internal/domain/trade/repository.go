package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
)

// InvoiceRepository defines the persistence interface for invoices
type InvoiceRepository interface {
	Save(ctx context.Context, invoice *Invoice) error
	SaveWithLock(ctx context.Context, invoice *Invoice) error
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*Invoice, error)
	FindByNumber(ctx context.Context, number string, tenantID uuid.UUID) (*Invoice, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Invoice], error)
	FindByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*Invoice, error)
	FindRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]*Invoice, error)
	// GenerateInvoiceNumber issues the next INV-YYYY-NNNNN number for the
	// tenant, resetting the sequence each calendar year.
	GenerateInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// PurchaseRepository defines the persistence interface for purchases
type PurchaseRepository interface {
	Save(ctx context.Context, purchase *Purchase) error
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*Purchase, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Purchase], error)
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}

// SalesReturnRepository defines the persistence interface for standalone returns
type SalesReturnRepository interface {
	Save(ctx context.Context, ret *SalesReturn) error
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*SalesReturn, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*SalesReturn], error)
	// GenerateReturnNumber issues the next SR-YYYY-NNNNN number for the tenant
	GenerateReturnNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
