package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultLowStockAlert is the reorder threshold applied when none is given
const DefaultLowStockAlert = 5

// Product represents a sellable item in the catalog
// It is the aggregate root for stock and pricing operations
type Product struct {
	shared.TenantAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_product_tenant_name,priority:2"`
	Barcode       string          `gorm:"type:varchar(64);uniqueIndex:idx_product_tenant_barcode,priority:2"`
	SKU           string          `gorm:"type:varchar(64);index"`
	Description   string          `gorm:"type:text"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockQuantity int             `gorm:"not null;default:0"`
	LowStockAlert int             `gorm:"not null;default:5"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(tenantID uuid.UUID, name, barcode string, salePrice, costPrice decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if salePrice.IsNegative() || costPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Prices cannot be negative")
	}

	product := &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                strings.TrimSpace(name),
		Barcode:             strings.TrimSpace(barcode),
		SalePrice:           salePrice,
		CostPrice:           costPrice,
		StockQuantity:       0,
		LowStockAlert:       DefaultLowStockAlert,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// UpdateDetails updates the product's descriptive fields
func (p *Product) UpdateDetails(name, barcode, sku, description string, categoryID *uuid.UUID) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Barcode = strings.TrimSpace(barcode)
	p.SKU = strings.TrimSpace(sku)
	p.Description = description
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// UpdatePricing updates the sale and cost prices
func (p *Product) UpdatePricing(salePrice, costPrice decimal.Decimal) error {
	if salePrice.IsNegative() || costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Prices cannot be negative")
	}

	p.SalePrice = salePrice
	p.CostPrice = costPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetLowStockAlert updates the reorder threshold
func (p *Product) SetLowStockAlert(threshold int) error {
	if threshold < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Low stock threshold cannot be negative")
	}
	p.LowStockAlert = threshold
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// DeductStock removes sold quantity from stock.
// Fails when on-hand quantity is insufficient; the caller must hold a row
// lock so that two concurrent sales cannot both pass this check.
func (p *Product) DeductStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if p.StockQuantity < quantity {
		return shared.NewInsufficientStockError(p.Name, p.StockQuantity)
	}

	p.StockQuantity -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewStockDeductedEvent(p, quantity))
	if p.IsLowStock() {
		p.AddDomainEvent(NewLowStockEvent(p))
	}

	return nil
}

// Restock returns previously sold quantity to stock
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	p.StockQuantity += quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewStockRestockedEvent(p, quantity))

	return nil
}

// ReceiveStock books purchased quantity into stock and overwrites the cost
// price with the latest unit cost. The most recent receipt wins; there is no
// weighted averaging.
func (p *Product) ReceiveStock(quantity int, unitCost decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Unit cost cannot be negative")
	}

	p.StockQuantity += quantity
	p.CostPrice = unitCost
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewStockReceivedEvent(p, quantity))

	return nil
}

// ReverseReceipt removes previously received quantity from stock, used when
// a purchase is deleted. Fails when the stock has since been sold down below
// the received quantity.
func (p *Product) ReverseReceipt(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if p.StockQuantity < quantity {
		return shared.NewInsufficientStockError(p.Name, p.StockQuantity)
	}

	p.StockQuantity -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsLowStock returns true when on-hand quantity is at or below the threshold
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockAlert
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot exceed 200 characters")
	}
	return nil
}
