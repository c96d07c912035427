package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/retailpos/backend/internal/domain/shared"
)

// SupplierService handles supplier bookkeeping operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create adds a supplier
func (s *SupplierService) Create(ctx context.Context, tenantID uuid.UUID, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(tenantID, req.Name, req.ContactPerson, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Update edits a supplier's contact details
func (s *SupplierService) Update(ctx context.Context, tenantID, supplierID uuid.UUID, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, supplierID, tenantID)
	if err != nil {
		return nil, err
	}

	if err := supplier.Update(req.Name, req.ContactPerson, req.Phone, req.Address); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.SaveWithLock(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, tenantID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, supplierID, tenantID)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers for the tenant
func (s *SupplierService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[SupplierResponse], error) {
	page, err := s.supplierRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[SupplierResponse]{}, err
	}
	items := make([]SupplierResponse, 0, len(page.Items))
	for _, sup := range page.Items {
		items = append(items, ToSupplierResponse(sup))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, tenantID, supplierID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByIDForTenant(ctx, supplierID, tenantID); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, supplierID, tenantID)
}
