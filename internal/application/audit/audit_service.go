package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/audit"
	"github.com/retailpos/backend/internal/domain/shared"
)

// AuditLogResponse is the API shape of an audit entry
type AuditLogResponse struct {
	ID           uuid.UUID `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Action       string    `json:"action"`
	Details      string    `json:"details"`
	Username     string    `json:"username"`
	IsSuspicious bool      `json:"is_suspicious"`
}

// ToAuditLogResponse maps an audit entry to its API shape
func ToAuditLogResponse(a *audit.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:           a.ID,
		Timestamp:    a.Timestamp,
		Action:       a.Action,
		Details:      a.Details,
		Username:     a.Username,
		IsSuspicious: a.IsSuspicious,
	}
}

// AuditService exposes read access to the append-only trail
type AuditService struct {
	auditRepo audit.AuditLogRepository
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo audit.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// List retrieves audit entries for the tenant, newest first
func (s *AuditService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[AuditLogResponse], error) {
	page, err := s.auditRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[AuditLogResponse]{}, err
	}
	return mapAuditPage(page), nil
}

// ListSuspicious retrieves only entries flagged for review
func (s *AuditService) ListSuspicious(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[AuditLogResponse], error) {
	page, err := s.auditRepo.FindSuspicious(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[AuditLogResponse]{}, err
	}
	return mapAuditPage(page), nil
}

func mapAuditPage(page shared.Paginated[*audit.AuditLog]) shared.Paginated[AuditLogResponse] {
	items := make([]AuditLogResponse, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, ToAuditLogResponse(a))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize)
}
