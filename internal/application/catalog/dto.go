package catalog

import (
	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the input for adding a catalog item
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Barcode       string          `json:"barcode"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	LowStockAlert *int            `json:"low_stock_alert"`
}

// UpdateProductRequest is the input for editing a catalog item
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Barcode       string          `json:"barcode"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	LowStockAlert *int            `json:"low_stock_alert"`
}

// ProductResponse is the API shape of a product
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity int             `json:"stock_quantity"`
	LowStockAlert int             `json:"low_stock_alert"`
	LowStock      bool            `json:"low_stock"`
}

// ToProductResponse maps a product aggregate to its API shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		SKU:           p.SKU,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		SalePrice:     p.SalePrice,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		LowStockAlert: p.LowStockAlert,
		LowStock:      p.IsLowStock(),
	}
}

// CategoryRequest is the input for creating or updating a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse is the API shape of a category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// ToCategoryResponse maps a category aggregate to its API shape
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
