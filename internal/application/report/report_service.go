package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/retailpos/backend/internal/domain/report"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ReportService builds the period business report
type ReportService struct {
	invoiceRepo  trade.InvoiceRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	expenseRepo  finance.ExpenseRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	invoiceRepo trade.InvoiceRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	expenseRepo finance.ExpenseRepository,
) *ReportService {
	return &ReportService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		expenseRepo:  expenseRepo,
	}
}

// GenerateReport aggregates the ledger over [from, to). Revenue and every
// figure derived from it use gross invoice totals; discounts do not shrink
// the reported takings. Growth compares against the immediately preceding
// window of the same length.
func (s *ReportService) GenerateReport(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (*report.PeriodReport, error) {
	if !to.After(from) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Report range must end after it starts")
	}

	invoices, err := s.invoiceRepo.FindByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	costs, err := loadProductCosts(ctx, s.productRepo, tenantID, invoices)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	cogs := decimal.Zero
	for _, inv := range invoices {
		revenue = revenue.Add(inv.TotalAmount)
		for _, item := range inv.Items {
			cogs = cogs.Add(lineCOGS(item, costs))
		}
	}

	expenses, err := s.expenseRepo.SumByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	prevFrom := from.Add(-to.Sub(from))
	prevInvoices, err := s.invoiceRepo.FindByDateRange(ctx, tenantID, prevFrom, from)
	if err != nil {
		return nil, err
	}
	prevRevenue := decimal.Zero
	for _, inv := range prevInvoices {
		prevRevenue = prevRevenue.Add(inv.TotalAmount)
	}

	result := &report.PeriodReport{
		From:          from,
		To:            to,
		Revenue:       revenue,
		Expenses:      expenses,
		NetCashFlow:   revenue.Sub(expenses),
		Profit:        revenue.Sub(cogs).Sub(expenses),
		GrowthPercent: growthPercent(prevRevenue, revenue),
		Transactions:  int64(len(invoices)),
	}

	if len(invoices) > 0 {
		result.AverageBasket = revenue.Div(decimal.NewFromInt(int64(len(invoices)))).Round(2)
	} else {
		result.AverageBasket = decimal.Zero
	}

	result.RetentionPercent = retentionPercent(invoices)
	result.PeakHours = peakHours(invoices)
	result.ProductMatrix = productMatrix(invoices, costs, 50)

	topCustomers, err := s.topCustomers(ctx, tenantID, invoices, 5)
	if err != nil {
		return nil, err
	}
	result.TopCustomers = topCustomers

	inventoryCost, projected, err := s.inventoryValue(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	result.InventoryCostValue = inventoryCost
	result.ProjectedProfit = projected

	return result, nil
}

// growthPercent compares revenue to the preceding window. An empty previous
// window with sales now counts as 100% growth; two empty windows as 0.
func growthPercent(prev, cur decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if cur.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(hundred).Round(2)
}

// retentionPercent is the share of linked customers with two or more
// invoices in the window. Walk-in sales are ignored entirely.
func retentionPercent(invoices []*trade.Invoice) decimal.Decimal {
	visits := make(map[uuid.UUID]int)
	for _, inv := range invoices {
		if inv.CustomerID != nil {
			visits[*inv.CustomerID]++
		}
	}
	if len(visits) == 0 {
		return decimal.Zero
	}
	returning := 0
	for _, n := range visits {
		if n >= 2 {
			returning++
		}
	}
	return decimal.NewFromInt(int64(returning)).
		Div(decimal.NewFromInt(int64(len(visits)))).
		Mul(hundred).Round(2)
}

// peakHours groups transactions by local hour of day, busiest first
func peakHours(invoices []*trade.Invoice) []report.HourlySales {
	type acc struct {
		count   int
		revenue decimal.Decimal
	}
	byHour := make(map[int]*acc)
	for _, inv := range invoices {
		h := inv.Date.Local().Hour()
		a, ok := byHour[h]
		if !ok {
			a = &acc{revenue: decimal.Zero}
			byHour[h] = a
		}
		a.count++
		a.revenue = a.revenue.Add(inv.TotalAmount)
	}

	hours := make([]report.HourlySales, 0, len(byHour))
	for h, a := range byHour {
		hours = append(hours, report.HourlySales{Hour: h, Transactions: a.count, Revenue: a.revenue})
	}
	sort.Slice(hours, func(a, b int) bool {
		if hours[a].Transactions != hours[b].Transactions {
			return hours[a].Transactions > hours[b].Transactions
		}
		return hours[a].Hour < hours[b].Hour
	})
	return hours
}

// productMatrix classifies each sold product by margin and volume and
// keeps the top sellers by revenue
func productMatrix(invoices []*trade.Invoice, costs map[uuid.UUID]decimal.Decimal, limit int) []report.ProductPerformance {
	type acc struct {
		name    string
		qty     int
		revenue decimal.Decimal
		cogs    decimal.Decimal
	}
	byProduct := make(map[uuid.UUID]*acc)
	for _, inv := range invoices {
		for _, item := range inv.Items {
			a, ok := byProduct[item.ProductID]
			if !ok {
				a = &acc{name: item.ProductName, revenue: decimal.Zero, cogs: decimal.Zero}
				byProduct[item.ProductID] = a
			}
			a.qty += item.Quantity
			a.revenue = a.revenue.Add(item.Amount)
			a.cogs = a.cogs.Add(lineCOGS(item, costs))
		}
	}

	matrix := make([]report.ProductPerformance, 0, len(byProduct))
	for id, a := range byProduct {
		margin := decimal.Zero
		if a.revenue.IsPositive() {
			margin = a.revenue.Sub(a.cogs).Div(a.revenue).Mul(hundred).Round(2)
		}
		matrix = append(matrix, report.ProductPerformance{
			ProductID:      id,
			Name:           a.name,
			QuantitySold:   a.qty,
			Revenue:        a.revenue,
			MarginPercent:  margin,
			Classification: report.Classify(margin, a.qty),
		})
	}
	sort.Slice(matrix, func(a, b int) bool { return matrix[a].Revenue.GreaterThan(matrix[b].Revenue) })
	if len(matrix) > limit {
		matrix = matrix[:limit]
	}
	return matrix
}

// topCustomers ranks linked customers by spend in the window
func (s *ReportService) topCustomers(ctx context.Context, tenantID uuid.UUID, invoices []*trade.Invoice, limit int) ([]report.CustomerSpend, error) {
	type acc struct {
		spend    decimal.Decimal
		invoices int
	}
	byCustomer := make(map[uuid.UUID]*acc)
	for _, inv := range invoices {
		if inv.CustomerID == nil {
			continue
		}
		a, ok := byCustomer[*inv.CustomerID]
		if !ok {
			a = &acc{spend: decimal.Zero}
			byCustomer[*inv.CustomerID] = a
		}
		a.spend = a.spend.Add(inv.TotalAmount)
		a.invoices++
	}
	if len(byCustomer) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(byCustomer))
	for id := range byCustomer {
		ids = append(ids, id)
	}
	customers, err := s.customerRepo.FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	top := make([]report.CustomerSpend, 0, len(byCustomer))
	for id, a := range byCustomer {
		top = append(top, report.CustomerSpend{
			CustomerID: id,
			Name:       names[id],
			Spend:      a.spend,
			Invoices:   a.invoices,
		})
	}
	sort.Slice(top, func(a, b int) bool { return top[a].Spend.GreaterThan(top[b].Spend) })
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

// inventoryValue prices current stock at cost and projects the profit of
// selling it all at today's sale prices
func (s *ReportService) inventoryValue(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	products, err := s.productRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	costValue := decimal.Zero
	projected := decimal.Zero
	for _, p := range products {
		qty := decimal.NewFromInt(int64(p.StockQuantity))
		costValue = costValue.Add(p.CostPrice.Mul(qty))
		projected = projected.Add(p.SalePrice.Sub(p.CostPrice).Mul(qty))
	}
	return costValue, projected, nil
}
