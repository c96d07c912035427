package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseStatus is the lifecycle state of a purchase
type PurchaseStatus string

const (
	PurchaseStatusReceived PurchaseStatus = "Received"
)

// Purchase records goods received from a supplier. The invoice number is the
// supplier's own document reference and is supplied by the caller, unlike
// sale invoice numbers which are generated.
type Purchase struct {
	shared.TenantAggregateRoot
	InvoiceNumber string          `gorm:"type:varchar(64);not null;index"`
	Date          time.Time       `gorm:"not null;index"`
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(16);not null"`
	Status        PurchaseStatus  `gorm:"type:varchar(16);not null;default:'Received'"`
	Items         []PurchaseItem  `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

// PurchaseItem is one received line on a purchase
type PurchaseItem struct {
	shared.BaseEntity
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalCost  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// TableName returns the table name for GORM
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// NewPurchase starts a new purchase record
func NewPurchase(tenantID uuid.UUID, invoiceNumber string, date time.Time, supplierID uuid.UUID, method PaymentMethod) (*Purchase, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier invoice number cannot be empty")
	}
	if !ValidPaymentMethod(method) {
		return nil, shared.NewDomainErrorf("INVALID_INPUT", "Unknown payment method: %s", method)
	}

	return &Purchase{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		InvoiceNumber:       invoiceNumber,
		Date:                date,
		SupplierID:          supplierID,
		PaymentMethod:       method,
		Status:              PurchaseStatusReceived,
		Items:               make([]PurchaseItem, 0),
	}, nil
}

// AddItem appends a received line
func (p *Purchase) AddItem(productID uuid.UUID, quantity int, unitCost decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Item quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Unit cost cannot be negative")
	}

	totalCost := unitCost.Mul(decimal.NewFromInt(int64(quantity)))
	p.Items = append(p.Items, PurchaseItem{
		BaseEntity: shared.NewBaseEntity(),
		PurchaseID: p.ID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitCost:   unitCost,
		TotalCost:  totalCost,
	})
	p.TotalAmount = p.TotalAmount.Add(totalCost)

	return nil
}

// Finalize fixes the paid amount and raises the creation event
func (p *Purchase) Finalize(amountPaid decimal.Decimal) error {
	if len(p.Items) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Purchase must have at least one item")
	}
	if amountPaid.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Amount paid cannot be negative")
	}

	p.AmountPaid = amountPaid

	p.AddDomainEvent(NewPurchaseCreatedEvent(p))

	return nil
}

// UnpaidAmount is the part of the total still owed to the supplier.
// Overpayment yields zero, never a negative payable.
func (p *Purchase) UnpaidAmount() decimal.Decimal {
	unpaid := p.TotalAmount.Sub(p.AmountPaid)
	if unpaid.IsNegative() {
		return decimal.Zero
	}
	return unpaid
}
