package catalog

import (
	"github.com/retailpos/backend/internal/domain/shared"
)

// Event type constants for product events
const (
	EventTypeProductCreated = "catalog.product.created"
	EventTypeProductUpdated = "catalog.product.updated"
	EventTypeProductDeleted = "catalog.product.deleted"
	EventTypeStockDeducted  = "catalog.product.stock_deducted"
	EventTypeStockRestocked = "catalog.product.stock_restocked"
	EventTypeStockReceived  = "catalog.product.stock_received"
	EventTypeLowStock       = "catalog.product.low_stock"
)

// ProductCreatedEvent is raised when a product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductName string `json:"product_name"`
	Barcode     string `json:"barcode"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, "Product", product.ID, product.TenantID),
		ProductName:     product.Name,
		Barcode:         product.Barcode,
	}
}

// ProductUpdatedEvent is raised when a product is updated
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductName string `json:"product_name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, "Product", product.ID, product.TenantID),
		ProductName:     product.Name,
	}
}

// StockDeductedEvent is raised when stock is sold
type StockDeductedEvent struct {
	shared.BaseDomainEvent
	Quantity  int `json:"quantity"`
	Remaining int `json:"remaining"`
}

// NewStockDeductedEvent creates a new StockDeductedEvent
func NewStockDeductedEvent(product *Product, quantity int) *StockDeductedEvent {
	return &StockDeductedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDeducted, "Product", product.ID, product.TenantID),
		Quantity:        quantity,
		Remaining:       product.StockQuantity,
	}
}

// StockRestockedEvent is raised when sold stock is returned
type StockRestockedEvent struct {
	shared.BaseDomainEvent
	Quantity  int `json:"quantity"`
	Remaining int `json:"remaining"`
}

// NewStockRestockedEvent creates a new StockRestockedEvent
func NewStockRestockedEvent(product *Product, quantity int) *StockRestockedEvent {
	return &StockRestockedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockRestocked, "Product", product.ID, product.TenantID),
		Quantity:        quantity,
		Remaining:       product.StockQuantity,
	}
}

// StockReceivedEvent is raised when purchased stock is booked in
type StockReceivedEvent struct {
	shared.BaseDomainEvent
	Quantity  int `json:"quantity"`
	Remaining int `json:"remaining"`
}

// NewStockReceivedEvent creates a new StockReceivedEvent
func NewStockReceivedEvent(product *Product, quantity int) *StockReceivedEvent {
	return &StockReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockReceived, "Product", product.ID, product.TenantID),
		Quantity:        quantity,
		Remaining:       product.StockQuantity,
	}
}

// LowStockEvent is raised when on-hand quantity falls to or below the threshold
type LowStockEvent struct {
	shared.BaseDomainEvent
	ProductName string `json:"product_name"`
	Remaining   int    `json:"remaining"`
	Threshold   int    `json:"threshold"`
}

// NewLowStockEvent creates a new LowStockEvent
func NewLowStockEvent(product *Product) *LowStockEvent {
	return &LowStockEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLowStock, "Product", product.ID, product.TenantID),
		ProductName:     product.Name,
		Remaining:       product.StockQuantity,
		Threshold:       product.LowStockAlert,
	}
}
