package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailpos/backend/internal/domain/audit"
	"github.com/retailpos/backend/internal/domain/shared"
)

// GormAuditLogRepository implements audit.AuditLogRepository using GORM.
// The trail is append-only; there are no update or delete operations.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts a new audit entry
func (r *GormAuditLogRepository) Append(ctx context.Context, entry *audit.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindAll finds audit entries matching the filter, paginated
func (r *GormAuditLogRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*audit.AuditLog], error) {
	query := r.db.WithContext(ctx).
		Model(&audit.AuditLog{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("action LIKE ? OR details LIKE ?", pattern, pattern)
	}
	if action, ok := filter.Filters["action"]; ok {
		query = query.Where("action = ?", action)
	}

	return queryPage[audit.AuditLog](query, filter, AuditLogSortFields, "timestamp")
}

// FindSuspicious finds flagged audit entries, paginated
func (r *GormAuditLogRepository) FindSuspicious(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*audit.AuditLog], error) {
	query := r.db.WithContext(ctx).
		Model(&audit.AuditLog{}).
		Where("tenant_id = ? AND is_suspicious = ?", tenantID, true)

	return queryPage[audit.AuditLog](query, filter, AuditLogSortFields, "timestamp")
}

// Ensure GormAuditLogRepository implements AuditLogRepository
var _ audit.AuditLogRepository = (*GormAuditLogRepository)(nil)
