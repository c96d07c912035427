package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSalesReturnServiceCreate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("restocks lines and accumulates refund", func(t *testing.T) {
		scope, productRepo, _, _, _, _, returnRepo, auditRepo := newTestScope()
		service := NewSalesReturnService(scope, returnRepo)

		product := stockedProduct(t, tenantID, "Coke 1.5L", 180, 150, 1)

		returnRepo.On("GenerateReturnNumber", ctx, tenantID).Return("SR-2026-00001", nil)
		productRepo.On("FindByIDForUpdate", ctx, product.ID, tenantID).Return(product, nil)
		productRepo.On("SaveWithLock", ctx, product).Return(nil)
		returnRepo.On("Save", ctx, mock.AnythingOfType("*trade.SalesReturn")).Return(nil)
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		resp, err := service.Create(ctx, tenantID, CreateSalesReturnRequest{
			Reason: "expired",
			Items:  []SalesReturnItemRequest{{ProductID: product.ID, Quantity: 2, RefundAmount: decimal.NewFromInt(360)}},
		})

		require.NoError(t, err)
		assert.Equal(t, "SR-2026-00001", resp.ReturnNumber)
		assert.Equal(t, 3, product.StockQuantity)
		assert.True(t, resp.TotalRefund.Equal(decimal.NewFromInt(360)))
	})

	t.Run("unknown product aborts the return", func(t *testing.T) {
		scope, productRepo, _, _, _, _, returnRepo, _ := newTestScope()
		service := NewSalesReturnService(scope, returnRepo)

		missingID := uuid.New()
		returnRepo.On("GenerateReturnNumber", ctx, tenantID).Return("SR-2026-00002", nil)
		productRepo.On("FindByIDForUpdate", ctx, missingID, tenantID).
			Return(nil, assert.AnError)

		_, err := service.Create(ctx, tenantID, CreateSalesReturnRequest{
			Items: []SalesReturnItemRequest{{ProductID: missingID, Quantity: 1, RefundAmount: decimal.NewFromInt(100)}},
		})

		require.Error(t, err)
		returnRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
