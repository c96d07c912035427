package trade

import (
	"context"

	"github.com/retailpos/backend/internal/domain/audit"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/retailpos/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the ledger repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to every repository a ledger
// command may touch, all bound to the same transaction. A sale, return,
// purchase or payment moves several rows at once (invoice, stock, partner
// balance, audit trail) and they must commit together.
type TransactionalRepositories interface {
	Products() catalog.ProductRepository
	Customers() partner.CustomerRepository
	Suppliers() partner.SupplierRepository
	Invoices() trade.InvoiceRepository
	Purchases() trade.PurchaseRepository
	SalesReturns() trade.SalesReturnRepository
	AuditLogs() audit.AuditLogRepository
}

// NoOpTransactionScope runs the function directly against the given
// repositories without a real transaction. Used in service tests.
type NoOpTransactionScope struct {
	ProductRepo     catalog.ProductRepository
	CustomerRepo    partner.CustomerRepository
	SupplierRepo    partner.SupplierRepository
	InvoiceRepo     trade.InvoiceRepository
	PurchaseRepo    trade.PurchaseRepository
	SalesReturnRepo trade.SalesReturnRepository
	AuditLogRepo    audit.AuditLogRepository
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.ProductRepo }

// Customers returns the customer repository
func (s *NoOpTransactionScope) Customers() partner.CustomerRepository { return s.CustomerRepo }

// Suppliers returns the supplier repository
func (s *NoOpTransactionScope) Suppliers() partner.SupplierRepository { return s.SupplierRepo }

// Invoices returns the invoice repository
func (s *NoOpTransactionScope) Invoices() trade.InvoiceRepository { return s.InvoiceRepo }

// Purchases returns the purchase repository
func (s *NoOpTransactionScope) Purchases() trade.PurchaseRepository { return s.PurchaseRepo }

// SalesReturns returns the sales return repository
func (s *NoOpTransactionScope) SalesReturns() trade.SalesReturnRepository { return s.SalesReturnRepo }

// AuditLogs returns the audit log repository
func (s *NoOpTransactionScope) AuditLogs() audit.AuditLogRepository { return s.AuditLogRepo }
