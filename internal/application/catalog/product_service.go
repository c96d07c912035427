package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/shared"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create adds a product, enforcing per-tenant uniqueness of name and barcode
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	if existing, err := s.productRepo.FindByName(ctx, req.Name, tenantID); err == nil && existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Product '%s' already exists", req.Name)
	}
	if req.Barcode != "" {
		if existing, err := s.productRepo.FindByBarcode(ctx, req.Barcode, tenantID); err == nil && existing != nil {
			return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Barcode '%s' is already in use", req.Barcode)
		}
	}

	product, err := catalog.NewProduct(tenantID, req.Name, req.Barcode, req.SalePrice, req.CostPrice)
	if err != nil {
		return nil, err
	}
	product.SKU = req.SKU
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	if req.LowStockAlert != nil {
		if err := product.SetLowStockAlert(*req.LowStockAlert); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Update edits a product's details and pricing
func (s *ProductService) Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, productID, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Barcode != "" && req.Barcode != product.Barcode {
		if existing, err := s.productRepo.FindByBarcode(ctx, req.Barcode, tenantID); err == nil && existing != nil && existing.ID != product.ID {
			return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Barcode '%s' is already in use", req.Barcode)
		}
	}

	if err := product.UpdateDetails(req.Name, req.Barcode, req.SKU, req.Description, req.CategoryID); err != nil {
		return nil, err
	}
	if err := product.UpdatePricing(req.SalePrice, req.CostPrice); err != nil {
		return nil, err
	}
	if req.LowStockAlert != nil {
		if err := product.SetLowStockAlert(*req.LowStockAlert); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, productID, tenantID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetByBarcode retrieves a product by barcode, the register's fast path
func (s *ProductService) GetByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByBarcode(ctx, barcode, tenantID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products for the tenant
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[ProductResponse], error) {
	page, err := s.productRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	items := make([]ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, ToProductResponse(p))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByIDForTenant(ctx, productID, tenantID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID, tenantID)
}
