package partner

import (
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event type constants for supplier events
const (
	EventTypeSupplierCreated        = "partner.supplier.created"
	EventTypeSupplierBalanceChanged = "partner.supplier.balance_changed"
)

// SupplierCreatedEvent is raised when a supplier is created
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	SupplierName string `json:"supplier_name"`
}

// NewSupplierCreatedEvent creates a new SupplierCreatedEvent
func NewSupplierCreatedEvent(supplier *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, "Supplier", supplier.ID, supplier.TenantID),
		SupplierName:    supplier.Name,
	}
}

// SupplierBalanceChangedEvent is raised when the payable balance moves
type SupplierBalanceChangedEvent struct {
	shared.BaseDomainEvent
	Delta      decimal.Decimal `json:"delta"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// NewSupplierBalanceChangedEvent creates a new SupplierBalanceChangedEvent
func NewSupplierBalanceChangedEvent(supplier *Supplier, delta decimal.Decimal) *SupplierBalanceChangedEvent {
	return &SupplierBalanceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierBalanceChanged, "Supplier", supplier.ID, supplier.TenantID),
		Delta:           delta,
		NewBalance:      supplier.Balance,
	}
}
