package migration

import (
	"gorm.io/gorm"

	"github.com/retailpos/backend/internal/domain/audit"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/retailpos/backend/internal/domain/trade"
)

// AutoCreateSchema builds the full schema from the GORM models. Production
// schemas are managed by the SQL migrations; this is for in-memory test
// databases and local scratch environments only.
func AutoCreateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Category{},
		&catalog.Product{},
		&partner.Customer{},
		&partner.Supplier{},
		&trade.Invoice{},
		&trade.InvoiceItem{},
		&trade.Purchase{},
		&trade.PurchaseItem{},
		&trade.SalesReturn{},
		&trade.SalesReturnItem{},
		&finance.Expense{},
		&audit.AuditLog{},
	)
}
