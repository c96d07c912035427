package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/retailpos/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testInvoice(t *testing.T, tenantID uuid.UUID, date time.Time, customerID *uuid.UUID, productID uuid.UUID, productName string, qty int, unitPrice int64) *trade.Invoice {
	t.Helper()
	method := trade.PaymentMethodCash
	if customerID != nil {
		method = trade.PaymentMethodCredit
	}
	inv, err := trade.NewInvoice(tenantID, uuid.NewString(), date, customerID, method)
	require.NoError(t, err)
	require.NoError(t, inv.AddItem(productID, productName, qty, decimal.NewFromInt(unitPrice)))
	require.NoError(t, inv.Finalize(decimal.Zero, decimal.NewFromInt(unitPrice*int64(qty))))
	return inv
}

func testProduct(t *testing.T, tenantID uuid.UUID, name string, sale, cost int64, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(tenantID, name, "", decimal.NewFromInt(sale), decimal.NewFromInt(cost))
	require.NoError(t, err)
	p.StockQuantity = stock
	return p
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)
	prevFrom := from.Add(-to.Sub(from))

	newService := func() (*ReportService, *MockInvoiceRepository, *MockProductRepository, *MockCustomerRepository, *MockExpenseRepository) {
		invoiceRepo := new(MockInvoiceRepository)
		productRepo := new(MockProductRepository)
		customerRepo := new(MockCustomerRepository)
		expenseRepo := new(MockExpenseRepository)
		return NewReportService(invoiceRepo, productRepo, customerRepo, expenseRepo), invoiceRepo, productRepo, customerRepo, expenseRepo
	}

	t.Run("computes revenue, profit and growth", func(t *testing.T) {
		service, invoiceRepo, productRepo, _, expenseRepo := newService()

		product := testProduct(t, tenantID, "Coke 1.5L", 180, 150, 40)
		// 2 units at 180: revenue 360, cogs 300
		inv := testInvoice(t, tenantID, from.Add(10*time.Hour), nil, product.ID, product.Name, 2, 180)
		prev := testInvoice(t, tenantID, prevFrom.Add(time.Hour), nil, product.ID, product.Name, 1, 180)

		invoiceRepo.On("FindByDateRange", ctx, tenantID, from, to).Return([]*trade.Invoice{inv}, nil)
		invoiceRepo.On("FindByDateRange", ctx, tenantID, prevFrom, from).Return([]*trade.Invoice{prev}, nil)
		productRepo.On("FindByIDs", ctx, tenantID, mock.Anything).Return([]*catalog.Product{product}, nil)
		productRepo.On("FindAllForTenant", ctx, tenantID).Return([]*catalog.Product{product}, nil)
		expenseRepo.On("SumByDateRange", ctx, tenantID, from, to).Return(decimal.NewFromInt(50), nil)

		r, err := service.GenerateReport(ctx, tenantID, from, to)
		require.NoError(t, err)

		assert.True(t, r.Revenue.Equal(decimal.NewFromInt(360)))
		assert.True(t, r.Profit.Equal(decimal.NewFromInt(10)), "360 - 300 cogs - 50 expenses")
		assert.True(t, r.NetCashFlow.Equal(decimal.NewFromInt(310)))
		assert.Equal(t, int64(1), r.Transactions)
		assert.True(t, r.AverageBasket.Equal(decimal.NewFromInt(360)))
		// prev 180 -> cur 360 is +100%
		assert.True(t, r.GrowthPercent.Equal(decimal.NewFromInt(100)))
		// inventory: 40 * 150 cost, 40 * 30 projected margin
		assert.True(t, r.InventoryCostValue.Equal(decimal.NewFromInt(6000)))
		assert.True(t, r.ProjectedProfit.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("cost above sale price is capped in COGS", func(t *testing.T) {
		service, invoiceRepo, productRepo, _, expenseRepo := newService()

		// cost 250 exceeds the 180 sale price: line cogs uses 180
		product := testProduct(t, tenantID, "Imported Juice", 180, 250, 0)
		inv := testInvoice(t, tenantID, from.Add(time.Hour), nil, product.ID, product.Name, 2, 180)

		invoiceRepo.On("FindByDateRange", ctx, tenantID, from, to).Return([]*trade.Invoice{inv}, nil)
		invoiceRepo.On("FindByDateRange", ctx, tenantID, prevFrom, from).Return([]*trade.Invoice{}, nil)
		productRepo.On("FindByIDs", ctx, tenantID, mock.Anything).Return([]*catalog.Product{product}, nil)
		productRepo.On("FindAllForTenant", ctx, tenantID).Return([]*catalog.Product{product}, nil)
		expenseRepo.On("SumByDateRange", ctx, tenantID, from, to).Return(decimal.Zero, nil)

		r, err := service.GenerateReport(ctx, tenantID, from, to)
		require.NoError(t, err)

		// revenue 360, capped cogs 360, no expenses
		assert.True(t, r.Profit.IsZero())
	})

	t.Run("empty previous window with sales now is 100 percent growth", func(t *testing.T) {
		service, invoiceRepo, productRepo, _, expenseRepo := newService()

		product := testProduct(t, tenantID, "Bread", 150, 100, 0)
		inv := testInvoice(t, tenantID, from.Add(time.Hour), nil, product.ID, product.Name, 1, 150)

		invoiceRepo.On("FindByDateRange", ctx, tenantID, from, to).Return([]*trade.Invoice{inv}, nil)
		invoiceRepo.On("FindByDateRange", ctx, tenantID, prevFrom, from).Return([]*trade.Invoice{}, nil)
		productRepo.On("FindByIDs", ctx, tenantID, mock.Anything).Return([]*catalog.Product{product}, nil)
		productRepo.On("FindAllForTenant", ctx, tenantID).Return([]*catalog.Product{product}, nil)
		expenseRepo.On("SumByDateRange", ctx, tenantID, from, to).Return(decimal.Zero, nil)

		r, err := service.GenerateReport(ctx, tenantID, from, to)
		require.NoError(t, err)
		assert.True(t, r.GrowthPercent.Equal(decimal.NewFromInt(100)))
	})

	t.Run("two empty windows give zero growth", func(t *testing.T) {
		service, invoiceRepo, productRepo, _, expenseRepo := newService()

		invoiceRepo.On("FindByDateRange", ctx, tenantID, from, to).Return([]*trade.Invoice{}, nil)
		invoiceRepo.On("FindByDateRange", ctx, tenantID, prevFrom, from).Return([]*trade.Invoice{}, nil)
		productRepo.On("FindAllForTenant", ctx, tenantID).Return([]*catalog.Product{}, nil)
		expenseRepo.On("SumByDateRange", ctx, tenantID, from, to).Return(decimal.Zero, nil)

		r, err := service.GenerateReport(ctx, tenantID, from, to)
		require.NoError(t, err)
		assert.True(t, r.GrowthPercent.IsZero())
		assert.True(t, r.AverageBasket.IsZero())
		assert.True(t, r.RetentionPercent.IsZero())
	})

	t.Run("retention counts returning linked customers only", func(t *testing.T) {
		service, invoiceRepo, productRepo, customerRepo, expenseRepo := newService()

		product := testProduct(t, tenantID, "Rice 5kg", 1200, 1000, 0)
		repeat := uuid.New()
		oneOff := uuid.New()

		invoices := []*trade.Invoice{
			testInvoice(t, tenantID, from.Add(1*time.Hour), &repeat, product.ID, product.Name, 1, 1200),
			testInvoice(t, tenantID, from.Add(2*time.Hour), &repeat, product.ID, product.Name, 1, 1200),
			testInvoice(t, tenantID, from.Add(3*time.Hour), &oneOff, product.ID, product.Name, 1, 1200),
			// walk-in, excluded from retention
			testInvoice(t, tenantID, from.Add(4*time.Hour), nil, product.ID, product.Name, 1, 1200),
		}

		repeatCustomer, err := partner.NewCustomer(tenantID, "Ahmed Khan", "", "")
		require.NoError(t, err)
		repeatCustomer.ID = repeat
		oneOffCustomer, err := partner.NewCustomer(tenantID, "Sara Malik", "", "")
		require.NoError(t, err)
		oneOffCustomer.ID = oneOff

		invoiceRepo.On("FindByDateRange", ctx, tenantID, from, to).Return(invoices, nil)
		invoiceRepo.On("FindByDateRange", ctx, tenantID, prevFrom, from).Return([]*trade.Invoice{}, nil)
		productRepo.On("FindByIDs", ctx, tenantID, mock.Anything).Return([]*catalog.Product{product}, nil)
		productRepo.On("FindAllForTenant", ctx, tenantID).Return([]*catalog.Product{product}, nil)
		customerRepo.On("FindByIDs", ctx, tenantID, mock.Anything).Return([]*partner.Customer{repeatCustomer, oneOffCustomer}, nil)
		expenseRepo.On("SumByDateRange", ctx, tenantID, from, to).Return(decimal.Zero, nil)

		r, err := service.GenerateReport(ctx, tenantID, from, to)
		require.NoError(t, err)

		// 1 returning out of 2 linked customers
		assert.True(t, r.RetentionPercent.Equal(decimal.NewFromInt(50)))
		require.Len(t, r.TopCustomers, 2)
		assert.Equal(t, "Ahmed Khan", r.TopCustomers[0].Name)
		assert.Equal(t, 2, r.TopCustomers[0].Invoices)
	})

	t.Run("discounted invoice reports gross revenue", func(t *testing.T) {
		service, invoiceRepo, productRepo, customerRepo, expenseRepo := newService()

		product := testProduct(t, tenantID, "Coke 1.5L", 180, 150, 0)
		customerID := uuid.New()
		customer, err := partner.NewCustomer(tenantID, "Ahmed Khan", "", "")
		require.NoError(t, err)
		customer.ID = customerID

		// 2 units at 180 with 60 off: gross 360, net 300
		inv, err := trade.NewInvoice(tenantID, uuid.NewString(), from.Add(time.Hour), &customerID, trade.PaymentMethodCredit)
		require.NoError(t, err)
		require.NoError(t, inv.AddItem(product.ID, product.Name, 2, decimal.NewFromInt(180)))
		require.NoError(t, inv.Finalize(decimal.NewFromInt(60), decimal.Zero))

		invoiceRepo.On("FindByDateRange", ctx, tenantID, from, to).Return([]*trade.Invoice{inv}, nil)
		invoiceRepo.On("FindByDateRange", ctx, tenantID, prevFrom, from).Return([]*trade.Invoice{}, nil)
		productRepo.On("FindByIDs", ctx, tenantID, mock.Anything).Return([]*catalog.Product{product}, nil)
		productRepo.On("FindAllForTenant", ctx, tenantID).Return([]*catalog.Product{product}, nil)
		customerRepo.On("FindByIDs", ctx, tenantID, mock.Anything).Return([]*partner.Customer{customer}, nil)
		expenseRepo.On("SumByDateRange", ctx, tenantID, from, to).Return(decimal.NewFromInt(10), nil)

		r, err := service.GenerateReport(ctx, tenantID, from, to)
		require.NoError(t, err)

		assert.True(t, r.Revenue.Equal(decimal.NewFromInt(360)), "gross, not net: got %s", r.Revenue)
		assert.True(t, r.Profit.Equal(decimal.NewFromInt(50)), "360 - 300 cogs - 10 expenses")
		assert.True(t, r.AverageBasket.Equal(decimal.NewFromInt(360)))
		require.Len(t, r.TopCustomers, 1)
		assert.True(t, r.TopCustomers[0].Spend.Equal(decimal.NewFromInt(360)))
		require.NotEmpty(t, r.PeakHours)
		assert.True(t, r.PeakHours[0].Revenue.Equal(decimal.NewFromInt(360)))
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		service, _, _, _, _ := newService()
		_, err := service.GenerateReport(ctx, tenantID, to, from)
		assert.Error(t, err)
	})
}

func TestGenerateReportProductMatrix(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)
	prevFrom := from.Add(-to.Sub(from))

	invoiceRepo := new(MockInvoiceRepository)
	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	expenseRepo := new(MockExpenseRepository)
	service := NewReportService(invoiceRepo, productRepo, customerRepo, expenseRepo)

	// margin 50% sold 10 -> Star; margin 10% sold 2 -> Loss
	star := testProduct(t, tenantID, "Premium Tea", 200, 100, 0)
	loss := testProduct(t, tenantID, "Sugar 1kg", 100, 90, 0)

	invoices := []*trade.Invoice{
		testInvoice(t, tenantID, from.Add(time.Hour), nil, star.ID, star.Name, 10, 200),
		testInvoice(t, tenantID, from.Add(2*time.Hour), nil, loss.ID, loss.Name, 2, 100),
	}

	invoiceRepo.On("FindByDateRange", ctx, tenantID, from, to).Return(invoices, nil)
	invoiceRepo.On("FindByDateRange", ctx, tenantID, prevFrom, from).Return([]*trade.Invoice{}, nil)
	productRepo.On("FindByIDs", ctx, tenantID, mock.Anything).Return([]*catalog.Product{star, loss}, nil)
	productRepo.On("FindAllForTenant", ctx, tenantID).Return([]*catalog.Product{star, loss}, nil)
	expenseRepo.On("SumByDateRange", ctx, tenantID, from, to).Return(decimal.Zero, nil)

	r, err := service.GenerateReport(ctx, tenantID, from, to)
	require.NoError(t, err)

	require.Len(t, r.ProductMatrix, 2)
	assert.Equal(t, "Premium Tea", r.ProductMatrix[0].Name, "ordered by revenue")
	assert.Equal(t, "Star", r.ProductMatrix[0].Classification)
	assert.Equal(t, "Loss", r.ProductMatrix[1].Classification)
}
