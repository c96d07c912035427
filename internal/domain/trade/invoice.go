package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale or purchase was settled
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodBank   PaymentMethod = "Bank"
	PaymentMethodCredit PaymentMethod = "Credit"
)

// ValidPaymentMethod reports whether m is one of the accepted methods
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBank, PaymentMethodCredit:
		return true
	}
	return false
}

// InvoiceStatus is the lifecycle state of a sale invoice
type InvoiceStatus string

const (
	InvoiceStatusCompleted InvoiceStatus = "Completed"
	InvoiceStatusReturned  InvoiceStatus = "Returned"
)

// Invoice is a completed sale. Line items snapshot product name and unit
// price at the time of sale so later catalog edits do not rewrite history.
type Invoice struct {
	shared.TenantAggregateRoot
	InvoiceNumber  string          `gorm:"type:varchar(32);not null;uniqueIndex:idx_invoice_tenant_number,priority:2"`
	Date           time.Time       `gorm:"not null;index"`
	CustomerID     *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	NetAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ChangeGiven    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(16);not null"`
	Status         InvoiceStatus   `gorm:"type:varchar(16);not null;default:'Completed'"`
	Items          []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// InvoiceItem is one sold line on an invoice
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// NewInvoice starts a new invoice in the given tenant. Items are added with
// AddItem and totals fixed with Finalize before the invoice is persisted.
func NewInvoice(tenantID uuid.UUID, invoiceNumber string, date time.Time, customerID *uuid.UUID, method PaymentMethod) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice number cannot be empty")
	}
	if !ValidPaymentMethod(method) {
		return nil, shared.NewDomainErrorf("INVALID_INPUT", "Unknown payment method: %s", method)
	}
	if method == PaymentMethodCredit && customerID == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Credit sales require a customer")
	}

	return &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		InvoiceNumber:       invoiceNumber,
		Date:                date,
		CustomerID:          customerID,
		PaymentMethod:       method,
		Status:              InvoiceStatusCompleted,
		Items:               make([]InvoiceItem, 0),
	}, nil
}

// AddItem appends a sold line, snapshotting name and price
func (i *Invoice) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Item quantity must be positive")
	}

	amount := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	i.Items = append(i.Items, InvoiceItem{
		BaseEntity:  shared.NewBaseEntity(),
		InvoiceID:   i.ID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      amount,
	})
	i.TotalAmount = i.TotalAmount.Add(amount)

	return nil
}

// Finalize fixes discount and payment figures. The discount is taken at face
// value even when it exceeds the total, so NetAmount may go negative; the
// register operator is trusted here. Credit sales record nothing as paid and
// never produce change. Cash-style sales keep the tendered amount and hand
// back change when it exceeds the net.
func (i *Invoice) Finalize(discount, paidAmount decimal.Decimal) error {
	if len(i.Items) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Invoice must have at least one item")
	}
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Discount cannot be negative")
	}
	if paidAmount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Paid amount cannot be negative")
	}

	i.DiscountAmount = discount
	i.NetAmount = i.TotalAmount.Sub(discount)

	if i.PaymentMethod == PaymentMethodCredit {
		i.PaidAmount = decimal.Zero
		i.ChangeGiven = decimal.Zero
	} else {
		i.PaidAmount = paidAmount
		change := paidAmount.Sub(i.NetAmount)
		if change.IsNegative() {
			change = decimal.Zero
		}
		i.ChangeGiven = change
	}

	i.AddDomainEvent(NewInvoiceCreatedEvent(i))

	return nil
}

// MarkReturned flips the invoice to Returned exactly once
func (i *Invoice) MarkReturned() error {
	if i.Status == InvoiceStatusReturned {
		return shared.ErrAlreadyReturned
	}

	i.Status = InvoiceStatusReturned
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewInvoiceReturnedEvent(i))

	return nil
}

// IsCredit reports whether the sale was made on customer credit
func (i *Invoice) IsCredit() bool {
	return i.PaymentMethod == PaymentMethodCredit
}
