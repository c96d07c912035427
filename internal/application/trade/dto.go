package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale; price and name come from the catalog
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest is the input for completing a sale at the register
type CreateSaleRequest struct {
	CustomerID     *uuid.UUID        `json:"customer_id"`
	PaymentMethod  string            `json:"payment_method" binding:"required,oneof=Cash Card Bank Credit"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	PaidAmount     decimal.Decimal   `json:"paid_amount"`
	Items          []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Username       string            `json:"username"`
}

// PurchaseItemRequest is one line of goods received
type PurchaseItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest is the input for recording a supplier delivery
type CreatePurchaseRequest struct {
	SupplierID    uuid.UUID             `json:"supplier_id" binding:"required"`
	InvoiceNumber string                `json:"invoice_number" binding:"required"`
	PaymentMethod string                `json:"payment_method" binding:"required,oneof=Cash Card Bank Credit"`
	AmountPaid    decimal.Decimal       `json:"amount_paid"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	Username      string                `json:"username"`
}

// SalesReturnItemRequest is one returned line with its ad-hoc refund
type SalesReturnItemRequest struct {
	ProductID    uuid.UUID       `json:"product_id" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required,gt=0"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

// CreateSalesReturnRequest is the input for a standalone return
type CreateSalesReturnRequest struct {
	Reason   string                   `json:"reason"`
	Items    []SalesReturnItemRequest `json:"items" binding:"required,min=1,dive"`
	Username string                   `json:"username"`
}

// InvoiceItemResponse is one invoice line in API responses
type InvoiceItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is the API shape of an invoice
type InvoiceResponse struct {
	ID             uuid.UUID             `json:"id"`
	InvoiceNumber  string                `json:"invoice_number"`
	Date           time.Time             `json:"date"`
	CustomerID     *uuid.UUID            `json:"customer_id,omitempty"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	NetAmount      decimal.Decimal       `json:"net_amount"`
	PaidAmount     decimal.Decimal       `json:"paid_amount"`
	ChangeGiven    decimal.Decimal       `json:"change_given"`
	PaymentMethod  string                `json:"payment_method"`
	Status         string                `json:"status"`
	Items          []InvoiceItemResponse `json:"items"`
}

// ToInvoiceResponse maps an invoice aggregate to its API shape
func ToInvoiceResponse(inv *trade.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		Date:           inv.Date,
		CustomerID:     inv.CustomerID,
		TotalAmount:    inv.TotalAmount,
		DiscountAmount: inv.DiscountAmount,
		NetAmount:      inv.NetAmount,
		PaidAmount:     inv.PaidAmount,
		ChangeGiven:    inv.ChangeGiven,
		PaymentMethod:  string(inv.PaymentMethod),
		Status:         string(inv.Status),
		Items:          items,
	}
}

// PurchaseItemResponse is one purchase line in API responses
type PurchaseItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// PurchaseResponse is the API shape of a purchase
type PurchaseResponse struct {
	ID            uuid.UUID              `json:"id"`
	InvoiceNumber string                 `json:"invoice_number"`
	Date          time.Time              `json:"date"`
	SupplierID    uuid.UUID              `json:"supplier_id"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	AmountPaid    decimal.Decimal        `json:"amount_paid"`
	PaymentMethod string                 `json:"payment_method"`
	Status        string                 `json:"status"`
	Items         []PurchaseItemResponse `json:"items"`
}

// ToPurchaseResponse maps a purchase aggregate to its API shape
func ToPurchaseResponse(p *trade.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, PurchaseItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			TotalCost: it.TotalCost,
		})
	}
	return PurchaseResponse{
		ID:            p.ID,
		InvoiceNumber: p.InvoiceNumber,
		Date:          p.Date,
		SupplierID:    p.SupplierID,
		TotalAmount:   p.TotalAmount,
		AmountPaid:    p.AmountPaid,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		Items:         items,
	}
}

// SalesReturnItemResponse is one returned line in API responses
type SalesReturnItemResponse struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Quantity     int             `json:"quantity"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

// SalesReturnResponse is the API shape of a standalone return
type SalesReturnResponse struct {
	ID           uuid.UUID                 `json:"id"`
	ReturnNumber string                    `json:"return_number"`
	Date         time.Time                 `json:"date"`
	Reason       string                    `json:"reason"`
	TotalRefund  decimal.Decimal           `json:"total_refund"`
	Items        []SalesReturnItemResponse `json:"items"`
}

// ToSalesReturnResponse maps a sales return aggregate to its API shape
func ToSalesReturnResponse(r *trade.SalesReturn) SalesReturnResponse {
	items := make([]SalesReturnItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, SalesReturnItemResponse{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			RefundAmount: it.RefundAmount,
		})
	}
	return SalesReturnResponse{
		ID:           r.ID,
		ReturnNumber: r.ReturnNumber,
		Date:         r.Date,
		Reason:       r.Reason,
		TotalRefund:  r.TotalRefund,
		Items:        items,
	}
}
