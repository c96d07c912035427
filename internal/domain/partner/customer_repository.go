package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence interface for customers
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error
	SaveWithLock(ctx context.Context, customer *Customer) error
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*Customer, error)
	FindByPhone(ctx context.Context, phone string, tenantID uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Customer], error)
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*Customer, error)
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}
