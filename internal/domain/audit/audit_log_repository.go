package audit

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
)

// AuditLogRepository defines the persistence interface for audit entries.
// There is no update or delete; the trail is append-only.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *AuditLog) error
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*AuditLog], error)
	FindSuspicious(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*AuditLog], error)
}
