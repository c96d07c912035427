package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseRepository defines the persistence interface for expenses
type ExpenseRepository interface {
	Save(ctx context.Context, expense *Expense) error
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Expense], error)
	SumByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	FindByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*Expense, error)
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}
