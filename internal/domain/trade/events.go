package trade

import (
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event type constants for trade events
const (
	EventTypeInvoiceCreated     = "trade.invoice.created"
	EventTypeInvoiceReturned    = "trade.invoice.returned"
	EventTypePurchaseCreated    = "trade.purchase.created"
	EventTypePurchaseDeleted    = "trade.purchase.deleted"
	EventTypeSalesReturnCreated = "trade.sales_return.created"
)

// InvoiceCreatedEvent is raised when a sale completes
type InvoiceCreatedEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string          `json:"invoice_number"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

// NewInvoiceCreatedEvent creates a new InvoiceCreatedEvent
func NewInvoiceCreatedEvent(invoice *Invoice) *InvoiceCreatedEvent {
	return &InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceCreated, "Invoice", invoice.ID, invoice.TenantID),
		InvoiceNumber:   invoice.InvoiceNumber,
		NetAmount:       invoice.NetAmount,
		PaymentMethod:   invoice.PaymentMethod,
	}
}

// InvoiceReturnedEvent is raised when an invoice is returned
type InvoiceReturnedEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string          `json:"invoice_number"`
	NetAmount     decimal.Decimal `json:"net_amount"`
}

// NewInvoiceReturnedEvent creates a new InvoiceReturnedEvent
func NewInvoiceReturnedEvent(invoice *Invoice) *InvoiceReturnedEvent {
	return &InvoiceReturnedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceReturned, "Invoice", invoice.ID, invoice.TenantID),
		InvoiceNumber:   invoice.InvoiceNumber,
		NetAmount:       invoice.NetAmount,
	}
}

// PurchaseCreatedEvent is raised when a purchase is recorded
type PurchaseCreatedEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// NewPurchaseCreatedEvent creates a new PurchaseCreatedEvent
func NewPurchaseCreatedEvent(purchase *Purchase) *PurchaseCreatedEvent {
	return &PurchaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseCreated, "Purchase", purchase.ID, purchase.TenantID),
		InvoiceNumber:   purchase.InvoiceNumber,
		TotalAmount:     purchase.TotalAmount,
	}
}

// SalesReturnCreatedEvent is raised when a standalone return is recorded
type SalesReturnCreatedEvent struct {
	shared.BaseDomainEvent
	ReturnNumber string          `json:"return_number"`
	TotalRefund  decimal.Decimal `json:"total_refund"`
}

// NewSalesReturnCreatedEvent creates a new SalesReturnCreatedEvent
func NewSalesReturnCreatedEvent(ret *SalesReturn) *SalesReturnCreatedEvent {
	return &SalesReturnCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesReturnCreated, "SalesReturn", ret.ID, ret.TenantID),
		ReturnNumber:    ret.ReturnNumber,
		TotalRefund:     ret.TotalRefund,
	}
}
