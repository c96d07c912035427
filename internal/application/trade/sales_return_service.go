package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/audit"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/trade"
)

// SalesReturnService handles standalone returns that are not tied to an invoice
type SalesReturnService struct {
	scope      TransactionScope
	returnRepo trade.SalesReturnRepository
}

// NewSalesReturnService creates a new SalesReturnService
func NewSalesReturnService(scope TransactionScope, returnRepo trade.SalesReturnRepository) *SalesReturnService {
	return &SalesReturnService{
		scope:      scope,
		returnRepo: returnRepo,
	}
}

// Create books a standalone return: every line goes back into stock and the
// refund is whatever the operator keyed in, with no link to an invoice or
// its original prices.
func (s *SalesReturnService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSalesReturnRequest) (*SalesReturnResponse, error) {
	var response SalesReturnResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		number, err := repos.SalesReturns().GenerateReturnNumber(ctx, tenantID)
		if err != nil {
			return err
		}

		ret, err := trade.NewSalesReturn(tenantID, number, time.Now(), req.Reason)
		if err != nil {
			return err
		}

		for _, line := range req.Items {
			product, err := repos.Products().FindByIDForUpdate(ctx, line.ProductID, tenantID)
			if err != nil {
				return err
			}
			if err := product.Restock(line.Quantity); err != nil {
				return err
			}
			if err := repos.Products().SaveWithLock(ctx, product); err != nil {
				return err
			}
			if err := ret.AddItem(product.ID, line.Quantity, line.RefundAmount); err != nil {
				return err
			}
		}

		if err := ret.Finalize(); err != nil {
			return err
		}

		if err := repos.SalesReturns().Save(ctx, ret); err != nil {
			return err
		}

		entry, err := audit.NewAuditLog(tenantID, audit.ActionSalesReturn,
			fmt.Sprintf("Return %s recorded, refund %s", ret.ReturnNumber, ret.TotalRefund.StringFixed(2)),
			req.Username)
		if err != nil {
			return err
		}
		if err := repos.AuditLogs().Append(ctx, entry); err != nil {
			return err
		}

		response = ToSalesReturnResponse(ret)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a standalone return by ID
func (s *SalesReturnService) GetByID(ctx context.Context, tenantID, returnID uuid.UUID) (*SalesReturnResponse, error) {
	ret, err := s.returnRepo.FindByIDForTenant(ctx, returnID, tenantID)
	if err != nil {
		return nil, err
	}
	response := ToSalesReturnResponse(ret)
	return &response, nil
}

// List retrieves standalone returns for the tenant, newest first
func (s *SalesReturnService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[SalesReturnResponse], error) {
	page, err := s.returnRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[SalesReturnResponse]{}, err
	}
	items := make([]SalesReturnResponse, 0, len(page.Items))
	for _, r := range page.Items {
		items = append(items, ToSalesReturnResponse(r))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}
