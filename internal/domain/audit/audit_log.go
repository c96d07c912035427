package audit

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
)

// Well-known audit actions written by the ledger services
const (
	ActionSaleCompleted   = "SALE_COMPLETED"
	ActionInvoiceReturned = "INVOICE_RETURNED"
	ActionPurchaseCreated = "PURCHASE_CREATED"
	ActionPurchaseDeleted = "PURCHASE_DELETED"
	ActionSupplierPaid    = "SUPPLIER_PAID"
	ActionPaymentReceived = "PAYMENT_RECEIVED"
	ActionSalesReturn     = "SALES_RETURN"
)

// AuditLog is an append-only trail entry. Rows are written inside the same
// transaction as the ledger mutation they describe and are never updated.
type AuditLog struct {
	shared.BaseEntity
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Timestamp    time.Time `gorm:"not null;index"`
	Action       string    `gorm:"type:varchar(64);not null;index"`
	Details      string    `gorm:"type:text"`
	Username     string    `gorm:"type:varchar(100)"`
	IsSuspicious bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (AuditLog) TableName() string {
	return "audit_logs"
}

// NewAuditLog creates a new audit entry
func NewAuditLog(tenantID uuid.UUID, action, details, username string) (*AuditLog, error) {
	if strings.TrimSpace(action) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Audit action cannot be empty")
	}

	return &AuditLog{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		Timestamp:  time.Now(),
		Action:     action,
		Details:    details,
		Username:   username,
	}, nil
}

// FlagSuspicious marks the entry for review
func (a *AuditLog) FlagSuspicious() {
	a.IsSuspicious = true
}
