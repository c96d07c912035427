package trade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/audit"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/trade"
)

// InvoiceService handles the sale and return ledger commands
type InvoiceService struct {
	scope       TransactionScope
	invoiceRepo trade.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(scope TransactionScope, invoiceRepo trade.InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		scope:       scope,
		invoiceRepo: invoiceRepo,
	}
}

// CreateSale completes a sale: stock is checked and deducted per line, the
// unit price and product name are snapshotted from the catalog, payment
// figures are fixed and, for credit sales, the customer's balance grows by
// the net amount. Everything commits in one transaction; the per-product
// row lock serializes concurrent sales of the same item so two registers
// cannot both pass the stock check.
func (s *InvoiceService) CreateSale(ctx context.Context, tenantID uuid.UUID, req CreateSaleRequest) (*InvoiceResponse, error) {
	method := trade.PaymentMethod(req.PaymentMethod)
	if method == trade.PaymentMethodCredit && req.CustomerID == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Credit sales require a customer")
	}

	var response InvoiceResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		number, err := repos.Invoices().GenerateInvoiceNumber(ctx, tenantID)
		if err != nil {
			return err
		}

		invoice, err := trade.NewInvoice(tenantID, number, time.Now(), req.CustomerID, method)
		if err != nil {
			return err
		}

		for _, line := range req.Items {
			product, err := repos.Products().FindByIDForUpdate(ctx, line.ProductID, tenantID)
			if err != nil {
				return err
			}
			if err := product.DeductStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.Products().SaveWithLock(ctx, product); err != nil {
				return err
			}
			if err := invoice.AddItem(product.ID, product.Name, line.Quantity, product.SalePrice); err != nil {
				return err
			}
		}

		if err := invoice.Finalize(req.DiscountAmount, req.PaidAmount); err != nil {
			return err
		}

		if invoice.IsCredit() {
			customer, err := repos.Customers().FindByIDForTenant(ctx, *req.CustomerID, tenantID)
			if err != nil {
				return err
			}
			// a discount above the total yields a negative net, which
			// reduces what the customer owes
			if invoice.NetAmount.IsNegative() {
				err = customer.SettleCredit(invoice.NetAmount.Neg())
			} else {
				err = customer.AddCredit(invoice.NetAmount)
			}
			if err != nil {
				return err
			}
			if err := repos.Customers().SaveWithLock(ctx, customer); err != nil {
				return err
			}
		}

		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}

		entry, err := audit.NewAuditLog(tenantID, audit.ActionSaleCompleted,
			fmt.Sprintf("Invoice %s completed, net %s via %s", invoice.InvoiceNumber, invoice.NetAmount.StringFixed(2), invoice.PaymentMethod),
			req.Username)
		if err != nil {
			return err
		}
		if err := repos.AuditLogs().Append(ctx, entry); err != nil {
			return err
		}

		response = ToInvoiceResponse(invoice)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ReturnInvoice reverses a whole invoice exactly once: stock comes back for
// every line, a credit sale shrinks the customer's balance by the net amount
// (floored at zero), and the reversal lands in the audit trail. Lines whose
// product has since been deleted restock nothing but do not fail the return.
func (s *InvoiceService) ReturnInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID, username string) (*InvoiceResponse, error) {
	var response InvoiceResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.Invoices().FindByIDForTenant(ctx, invoiceID, tenantID)
		if err != nil {
			return err
		}

		if err := invoice.MarkReturned(); err != nil {
			return err
		}

		for _, item := range invoice.Items {
			product, err := repos.Products().FindByIDForUpdate(ctx, item.ProductID, tenantID)
			if err != nil {
				if shared.IsCode(err, "NOT_FOUND") || errors.Is(err, shared.ErrNotFound) {
					continue
				}
				return err
			}
			if err := product.Restock(item.Quantity); err != nil {
				return err
			}
			if err := repos.Products().SaveWithLock(ctx, product); err != nil {
				return err
			}
		}

		if invoice.IsCredit() && invoice.CustomerID != nil && invoice.NetAmount.IsPositive() {
			customer, err := repos.Customers().FindByIDForTenant(ctx, *invoice.CustomerID, tenantID)
			if err != nil {
				return err
			}
			if err := customer.SettleCredit(invoice.NetAmount); err != nil {
				return err
			}
			if err := repos.Customers().SaveWithLock(ctx, customer); err != nil {
				return err
			}
		}

		if err := repos.Invoices().SaveWithLock(ctx, invoice); err != nil {
			return err
		}

		entry, err := audit.NewAuditLog(tenantID, audit.ActionInvoiceReturned,
			fmt.Sprintf("Invoice %s returned, net %s", invoice.InvoiceNumber, invoice.NetAmount.StringFixed(2)),
			username)
		if err != nil {
			return err
		}
		if err := repos.AuditLogs().Append(ctx, entry); err != nil {
			return err
		}

		response = ToInvoiceResponse(invoice)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForTenant(ctx, invoiceID, tenantID)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices for the tenant, newest first
func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[InvoiceResponse], error) {
	page, err := s.invoiceRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[InvoiceResponse]{}, err
	}
	items := make([]InvoiceResponse, 0, len(page.Items))
	for _, inv := range page.Items {
		items = append(items, ToInvoiceResponse(inv))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}
