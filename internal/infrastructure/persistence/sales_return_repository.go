package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/trade"
)

// GormSalesReturnRepository implements trade.SalesReturnRepository using GORM
type GormSalesReturnRepository struct {
	db *gorm.DB
}

// NewGormSalesReturnRepository creates a new GormSalesReturnRepository
func NewGormSalesReturnRepository(db *gorm.DB) *GormSalesReturnRepository {
	return &GormSalesReturnRepository{db: db}
}

// Save creates or updates a sales return with its items
func (r *GormSalesReturnRepository) Save(ctx context.Context, ret *trade.SalesReturn) error {
	return r.db.WithContext(ctx).Save(ret).Error
}

// FindByIDForTenant finds a sales return with its items by ID within a tenant
func (r *GormSalesReturnRepository) FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*trade.SalesReturn, error) {
	var ret trade.SalesReturn
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&ret).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// FindAll finds sales returns matching the filter, paginated
func (r *GormSalesReturnRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*trade.SalesReturn], error) {
	query := r.db.WithContext(ctx).
		Model(&trade.SalesReturn{}).
		Preload("Items").
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		query = query.Where("return_number LIKE ?", "%"+filter.Search+"%")
	}

	return queryPage[trade.SalesReturn](query, filter, SalesReturnSortFields, "date")
}

// GenerateReturnNumber issues the next SR-YYYY-NNNNN number for the tenant
func (r *GormSalesReturnRepository) GenerateReturnNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return nextSequentialNumber(ctx, r.db, &trade.SalesReturn{}, "return_number", "SR", tenantID)
}

// Ensure GormSalesReturnRepository implements SalesReturnRepository
var _ trade.SalesReturnRepository = (*GormSalesReturnRepository)(nil)
