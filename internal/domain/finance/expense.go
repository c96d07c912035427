package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Expense is an operating cost recorded outside the trade ledger.
// Expenses feed the profit and cash-flow reports.
type Expense struct {
	shared.TenantAggregateRoot
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Category    string          `gorm:"type:varchar(100);index"`
	Date        time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record
func NewExpense(tenantID uuid.UUID, description string, amount decimal.Decimal, category string, date time.Time) (*Expense, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expense description cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expense amount must be positive")
	}

	return &Expense{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Description:         strings.TrimSpace(description),
		Amount:              amount,
		Category:            strings.TrimSpace(category),
		Date:                date,
	}, nil
}
