package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/shared"
)

// CategoryService handles category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, productRepo catalog.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Create adds a category, enforcing per-tenant name uniqueness
func (s *CategoryService) Create(ctx context.Context, tenantID uuid.UUID, req CategoryRequest) (*CategoryResponse, error) {
	if existing, err := s.categoryRepo.FindByName(ctx, req.Name, tenantID); err == nil && existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Category '%s' already exists", req.Name)
	}

	category, err := catalog.NewCategory(tenantID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Update edits a category
func (s *CategoryService) Update(ctx context.Context, tenantID, categoryID uuid.UUID, req CategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForTenant(ctx, categoryID, tenantID)
	if err != nil {
		return nil, err
	}

	if err := category.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves categories for the tenant
func (s *CategoryService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[CategoryResponse], error) {
	page, err := s.categoryRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[CategoryResponse]{}, err
	}
	items := make([]CategoryResponse, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, ToCategoryResponse(c))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Delete removes a category unless products still reference it
func (s *CategoryService) Delete(ctx context.Context, tenantID, categoryID uuid.UUID) error {
	if _, err := s.categoryRepo.FindByIDForTenant(ctx, categoryID, tenantID); err != nil {
		return err
	}

	count, err := s.productRepo.CountByCategory(ctx, categoryID, tenantID)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainErrorf("INVALID_STATE", "Category is still used by %d products", count)
	}

	return s.categoryRepo.Delete(ctx, categoryID, tenantID)
}
