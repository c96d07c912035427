package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the input for recording an operating cost
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// ExpenseResponse is the API shape of an expense
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// ToExpenseResponse maps an expense aggregate to its API shape
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
	}
}

// ExpenseService handles expense bookkeeping
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Create records an expense; a zero date means today
func (s *ExpenseService) Create(ctx context.Context, tenantID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense, err := finance.NewExpense(tenantID, req.Description, req.Amount, req.Category, date)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses for the tenant
func (s *ExpenseService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[ExpenseResponse], error) {
	page, err := s.expenseRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[ExpenseResponse]{}, err
	}
	items := make([]ExpenseResponse, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, ToExpenseResponse(e))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Delete removes an expense record
func (s *ExpenseService) Delete(ctx context.Context, tenantID, expenseID uuid.UUID) error {
	if _, err := s.expenseRepo.FindByIDForTenant(ctx, expenseID, tenantID); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, expenseID, tenantID)
}
