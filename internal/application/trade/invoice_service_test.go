package trade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stockedProduct(t *testing.T, tenantID uuid.UUID, name string, salePrice, costPrice int64, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(tenantID, name, "", decimal.NewFromInt(salePrice), decimal.NewFromInt(costPrice))
	require.NoError(t, err)
	p.StockQuantity = stock
	return p
}

func TestInvoiceServiceCreateSale(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("cash sale deducts stock and snapshots price", func(t *testing.T) {
		scope, productRepo, _, _, invoiceRepo, _, _, auditRepo := newTestScope()
		service := NewInvoiceService(scope, invoiceRepo)

		product := stockedProduct(t, tenantID, "Coke 1.5L", 180, 150, 10)

		invoiceRepo.On("GenerateInvoiceNumber", ctx, tenantID).Return("INV-2026-00001", nil)
		productRepo.On("FindByIDForUpdate", ctx, product.ID, tenantID).Return(product, nil)
		productRepo.On("SaveWithLock", ctx, product).Return(nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*trade.Invoice")).Return(nil)
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		resp, err := service.CreateSale(ctx, tenantID, CreateSaleRequest{
			PaymentMethod:  "Cash",
			DiscountAmount: decimal.NewFromInt(20),
			PaidAmount:     decimal.NewFromInt(400),
			Items:          []SaleItemRequest{{ProductID: product.ID, Quantity: 2}},
			Username:       "cashier1",
		})

		require.NoError(t, err)
		assert.Equal(t, "INV-2026-00001", resp.InvoiceNumber)
		assert.Equal(t, 8, product.StockQuantity)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(360)))
		assert.True(t, resp.NetAmount.Equal(decimal.NewFromInt(340)))
		assert.True(t, resp.ChangeGiven.Equal(decimal.NewFromInt(60)))
		assert.Equal(t, "Coke 1.5L", resp.Items[0].ProductName)
		invoiceRepo.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
	})

	t.Run("insufficient stock aborts the sale", func(t *testing.T) {
		scope, productRepo, _, _, invoiceRepo, _, _, _ := newTestScope()
		service := NewInvoiceService(scope, invoiceRepo)

		product := stockedProduct(t, tenantID, "Bread", 150, 100, 1)

		invoiceRepo.On("GenerateInvoiceNumber", ctx, tenantID).Return("INV-2026-00002", nil)
		productRepo.On("FindByIDForUpdate", ctx, product.ID, tenantID).Return(product, nil)

		_, err := service.CreateSale(ctx, tenantID, CreateSaleRequest{
			PaymentMethod: "Cash",
			PaidAmount:    decimal.NewFromInt(500),
			Items:         []SaleItemRequest{{ProductID: product.ID, Quantity: 3}},
		})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INSUFFICIENT_STOCK"))
		invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("credit sale grows customer balance and records nothing paid", func(t *testing.T) {
		scope, productRepo, customerRepo, _, invoiceRepo, _, _, auditRepo := newTestScope()
		service := NewInvoiceService(scope, invoiceRepo)

		product := stockedProduct(t, tenantID, "Rice 5kg", 1200, 1000, 20)
		customer, err := partner.NewCustomer(tenantID, "Ahmed Khan", "0300-1234567", "")
		require.NoError(t, err)

		invoiceRepo.On("GenerateInvoiceNumber", ctx, tenantID).Return("INV-2026-00003", nil)
		productRepo.On("FindByIDForUpdate", ctx, product.ID, tenantID).Return(product, nil)
		productRepo.On("SaveWithLock", ctx, product).Return(nil)
		customerRepo.On("FindByIDForTenant", ctx, customer.ID, tenantID).Return(customer, nil)
		customerRepo.On("SaveWithLock", ctx, customer).Return(nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*trade.Invoice")).Return(nil)
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		resp, err := service.CreateSale(ctx, tenantID, CreateSaleRequest{
			CustomerID:    &customer.ID,
			PaymentMethod: "Credit",
			PaidAmount:    decimal.NewFromInt(5000), // ignored on credit
			Items:         []SaleItemRequest{{ProductID: product.ID, Quantity: 2}},
		})

		require.NoError(t, err)
		assert.True(t, resp.PaidAmount.IsZero())
		assert.True(t, resp.ChangeGiven.IsZero())
		assert.True(t, customer.CreditBalance.Equal(decimal.NewFromInt(2400)))
		customerRepo.AssertExpectations(t)
	})

	t.Run("credit sale without customer is rejected", func(t *testing.T) {
		scope, _, _, _, invoiceRepo, _, _, _ := newTestScope()
		service := NewInvoiceService(scope, invoiceRepo)

		_, err := service.CreateSale(ctx, tenantID, CreateSaleRequest{
			PaymentMethod: "Credit",
			Items:         []SaleItemRequest{{ProductID: uuid.New(), Quantity: 1}},
		})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_INPUT"))
	})
}

func completedInvoice(t *testing.T, tenantID uuid.UUID, customerID *uuid.UUID, method trade.PaymentMethod, productID uuid.UUID, qty int, unitPrice int64) *trade.Invoice {
	t.Helper()
	inv, err := trade.NewInvoice(tenantID, "INV-2026-00010", time.Now(), customerID, method)
	require.NoError(t, err)
	require.NoError(t, inv.AddItem(productID, "Item", qty, decimal.NewFromInt(unitPrice)))
	require.NoError(t, inv.Finalize(decimal.Zero, decimal.NewFromInt(unitPrice*int64(qty))))
	return inv
}

func TestInvoiceServiceReturnInvoice(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("restocks lines and marks returned", func(t *testing.T) {
		scope, productRepo, _, _, invoiceRepo, _, _, auditRepo := newTestScope()
		service := NewInvoiceService(scope, invoiceRepo)

		product := stockedProduct(t, tenantID, "Coke 1.5L", 180, 150, 3)
		inv := completedInvoice(t, tenantID, nil, trade.PaymentMethodCash, product.ID, 2, 180)

		invoiceRepo.On("FindByIDForTenant", ctx, inv.ID, tenantID).Return(inv, nil)
		productRepo.On("FindByIDForUpdate", ctx, product.ID, tenantID).Return(product, nil)
		productRepo.On("SaveWithLock", ctx, product).Return(nil)
		invoiceRepo.On("SaveWithLock", ctx, inv).Return(nil)
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		resp, err := service.ReturnInvoice(ctx, tenantID, inv.ID, "owner")

		require.NoError(t, err)
		assert.Equal(t, string(trade.InvoiceStatusReturned), resp.Status)
		assert.Equal(t, 5, product.StockQuantity)
	})

	t.Run("second return is rejected", func(t *testing.T) {
		scope, _, _, _, invoiceRepo, _, _, _ := newTestScope()
		service := NewInvoiceService(scope, invoiceRepo)

		inv := completedInvoice(t, tenantID, nil, trade.PaymentMethodCash, uuid.New(), 1, 100)
		require.NoError(t, inv.MarkReturned())

		invoiceRepo.On("FindByIDForTenant", ctx, inv.ID, tenantID).Return(inv, nil)

		_, err := service.ReturnInvoice(ctx, tenantID, inv.ID, "owner")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrAlreadyReturned))
	})

	t.Run("deleted product line is skipped, return still succeeds", func(t *testing.T) {
		scope, productRepo, _, _, invoiceRepo, _, _, auditRepo := newTestScope()
		service := NewInvoiceService(scope, invoiceRepo)

		goneProductID := uuid.New()
		inv := completedInvoice(t, tenantID, nil, trade.PaymentMethodCash, goneProductID, 1, 100)

		invoiceRepo.On("FindByIDForTenant", ctx, inv.ID, tenantID).Return(inv, nil)
		productRepo.On("FindByIDForUpdate", ctx, goneProductID, tenantID).Return(nil, shared.NewNotFoundError("Product", goneProductID))
		invoiceRepo.On("SaveWithLock", ctx, inv).Return(nil)
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		_, err := service.ReturnInvoice(ctx, tenantID, inv.ID, "owner")
		require.NoError(t, err)
	})

	t.Run("credit return settles customer balance floored at zero", func(t *testing.T) {
		scope, productRepo, customerRepo, _, invoiceRepo, _, _, auditRepo := newTestScope()
		service := NewInvoiceService(scope, invoiceRepo)

		product := stockedProduct(t, tenantID, "Rice 5kg", 1200, 1000, 0)
		customer, err := partner.NewCustomer(tenantID, "Ahmed Khan", "", "")
		require.NoError(t, err)
		require.NoError(t, customer.AddCredit(decimal.NewFromInt(1000)))

		inv := completedInvoice(t, tenantID, &customer.ID, trade.PaymentMethodCredit, product.ID, 2, 1200)

		invoiceRepo.On("FindByIDForTenant", ctx, inv.ID, tenantID).Return(inv, nil)
		productRepo.On("FindByIDForUpdate", ctx, product.ID, tenantID).Return(product, nil)
		productRepo.On("SaveWithLock", ctx, product).Return(nil)
		customerRepo.On("FindByIDForTenant", ctx, customer.ID, tenantID).Return(customer, nil)
		customerRepo.On("SaveWithLock", ctx, customer).Return(nil)
		invoiceRepo.On("SaveWithLock", ctx, inv).Return(nil)
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		_, err = service.ReturnInvoice(ctx, tenantID, inv.ID, "owner")

		require.NoError(t, err)
		// owed 1000, returned invoice net 2400: floor at zero
		assert.True(t, customer.CreditBalance.IsZero())
	})
}
