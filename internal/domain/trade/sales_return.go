package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalesReturn records goods taken back outside any invoice, with an
// ad-hoc refund per line. Invoice-linked returns go through the invoice's
// return flow instead.
type SalesReturn struct {
	shared.TenantAggregateRoot
	ReturnNumber string            `gorm:"type:varchar(32);not null;uniqueIndex:idx_salesreturn_tenant_number,priority:2"`
	Date         time.Time         `gorm:"not null;index"`
	Reason       string            `gorm:"type:text"`
	TotalRefund  decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Items        []SalesReturnItem `gorm:"foreignKey:SalesReturnID;constraint:OnDelete:CASCADE"`
}

// SalesReturnItem is one returned line
type SalesReturnItem struct {
	shared.BaseEntity
	SalesReturnID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity      int             `gorm:"not null"`
	RefundAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SalesReturn) TableName() string {
	return "sales_returns"
}

// TableName returns the table name for GORM
func (SalesReturnItem) TableName() string {
	return "sales_return_items"
}

// NewSalesReturn starts a new standalone return
func NewSalesReturn(tenantID uuid.UUID, returnNumber string, date time.Time, reason string) (*SalesReturn, error) {
	if returnNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Return number cannot be empty")
	}

	return &SalesReturn{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ReturnNumber:        returnNumber,
		Date:                date,
		Reason:              reason,
		Items:               make([]SalesReturnItem, 0),
	}, nil
}

// AddItem appends a returned line and accumulates the refund
func (r *SalesReturn) AddItem(productID uuid.UUID, quantity int, refundAmount decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Item quantity must be positive")
	}
	if refundAmount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Refund amount cannot be negative")
	}

	r.Items = append(r.Items, SalesReturnItem{
		BaseEntity:    shared.NewBaseEntity(),
		SalesReturnID: r.ID,
		ProductID:     productID,
		Quantity:      quantity,
		RefundAmount:  refundAmount,
	})
	r.TotalRefund = r.TotalRefund.Add(refundAmount)

	return nil
}

// Finalize validates the return and raises the creation event
func (r *SalesReturn) Finalize() error {
	if len(r.Items) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Return must have at least one item")
	}

	r.AddDomainEvent(NewSalesReturnCreatedEvent(r))

	return nil
}
