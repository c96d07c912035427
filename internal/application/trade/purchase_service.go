package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/audit"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/trade"
)

// PurchaseService handles the purchase and purchase-deletion ledger commands
type PurchaseService struct {
	scope        TransactionScope
	purchaseRepo trade.PurchaseRepository
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(scope TransactionScope, purchaseRepo trade.PurchaseRepository) *PurchaseService {
	return &PurchaseService{
		scope:        scope,
		purchaseRepo: purchaseRepo,
	}
}

// CreatePurchase books a supplier delivery: every line lands in stock and
// overwrites the product's cost price with the latest unit cost, and the
// unpaid remainder is added to the supplier's payable balance whatever the
// payment method says. All in one transaction.
func (s *PurchaseService) CreatePurchase(ctx context.Context, tenantID uuid.UUID, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	var response PurchaseResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		purchase, err := trade.NewPurchase(tenantID, req.InvoiceNumber, time.Now(), req.SupplierID, trade.PaymentMethod(req.PaymentMethod))
		if err != nil {
			return err
		}

		for _, line := range req.Items {
			product, err := repos.Products().FindByIDForUpdate(ctx, line.ProductID, tenantID)
			if err != nil {
				return err
			}
			if err := product.ReceiveStock(line.Quantity, line.UnitCost); err != nil {
				return err
			}
			if err := repos.Products().SaveWithLock(ctx, product); err != nil {
				return err
			}
			if err := purchase.AddItem(product.ID, line.Quantity, line.UnitCost); err != nil {
				return err
			}
		}

		if err := purchase.Finalize(req.AmountPaid); err != nil {
			return err
		}

		supplier, err := repos.Suppliers().FindByIDForTenant(ctx, req.SupplierID, tenantID)
		if err != nil {
			return err
		}
		if err := supplier.AddPayable(purchase.UnpaidAmount()); err != nil {
			return err
		}
		if err := repos.Suppliers().SaveWithLock(ctx, supplier); err != nil {
			return err
		}

		if err := repos.Purchases().Save(ctx, purchase); err != nil {
			return err
		}

		entry, err := audit.NewAuditLog(tenantID, audit.ActionPurchaseCreated,
			fmt.Sprintf("Purchase %s from supplier recorded, total %s", purchase.InvoiceNumber, purchase.TotalAmount.StringFixed(2)),
			req.Username)
		if err != nil {
			return err
		}
		if err := repos.AuditLogs().Append(ctx, entry); err != nil {
			return err
		}

		response = ToPurchaseResponse(purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// DeletePurchase reverses a purchase completely: the received stock is
// removed again, a Credit purchase's unpaid remainder comes off the
// supplier's balance and the purchase row is hard-deleted. Cash/Card/Bank
// purchases never touch the payable on deletion, even when partially paid.
// Stock sufficiency is verified for every line before any line is
// decremented, so a partially sold-down delivery blocks the whole deletion
// rather than leaving it half reversed.
func (s *PurchaseService) DeletePurchase(ctx context.Context, tenantID, purchaseID uuid.UUID, username string) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		purchase, err := repos.Purchases().FindByIDForTenant(ctx, purchaseID, tenantID)
		if err != nil {
			return err
		}

		products := make([]*catalog.Product, 0, len(purchase.Items))
		for _, item := range purchase.Items {
			product, err := repos.Products().FindByIDForUpdate(ctx, item.ProductID, tenantID)
			if err != nil {
				return err
			}
			if product.StockQuantity < item.Quantity {
				return shared.NewInsufficientStockError(product.Name, product.StockQuantity)
			}
			products = append(products, product)
		}

		for idx, item := range purchase.Items {
			if err := products[idx].ReverseReceipt(item.Quantity); err != nil {
				return err
			}
			if err := repos.Products().SaveWithLock(ctx, products[idx]); err != nil {
				return err
			}
		}

		unpaid := purchase.UnpaidAmount()
		if purchase.PaymentMethod == trade.PaymentMethodCredit && unpaid.IsPositive() {
			supplier, err := repos.Suppliers().FindByIDForTenant(ctx, purchase.SupplierID, tenantID)
			if err != nil {
				return err
			}
			if err := supplier.SettlePayable(unpaid); err != nil {
				return err
			}
			if err := repos.Suppliers().SaveWithLock(ctx, supplier); err != nil {
				return err
			}
		}

		if err := repos.Purchases().Delete(ctx, purchase.ID, tenantID); err != nil {
			return err
		}

		entry, err := audit.NewAuditLog(tenantID, audit.ActionPurchaseDeleted,
			fmt.Sprintf("Purchase %s deleted, total %s reversed", purchase.InvoiceNumber, purchase.TotalAmount.StringFixed(2)),
			username)
		if err != nil {
			return err
		}
		entry.FlagSuspicious()
		return repos.AuditLogs().Append(ctx, entry)
	})
}

// GetByID retrieves a purchase by ID
func (s *PurchaseService) GetByID(ctx context.Context, tenantID, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, purchaseID, tenantID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// List retrieves purchases for the tenant, newest first
func (s *PurchaseService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[PurchaseResponse], error) {
	page, err := s.purchaseRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PurchaseResponse]{}, err
	}
	items := make([]PurchaseResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, ToPurchaseResponse(p))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}
