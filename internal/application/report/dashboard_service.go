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
	"github.com/retailpos/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// WalkInCustomerName labels invoices with no linked customer
const WalkInCustomerName = "Walk-in Customer"

// DashboardService assembles the home-screen snapshot from the ledger.
// All aggregation runs over loaded rows rather than SQL so the figures use
// exactly the same rules as the report service.
type DashboardService struct {
	invoiceRepo  trade.InvoiceRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	expenseRepo  finance.ExpenseRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	invoiceRepo trade.InvoiceRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	expenseRepo finance.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		expenseRepo:  expenseRepo,
	}
}

// GetDashboardStats builds today's snapshot plus the 7-day widgets. All
// amounts are gross invoice totals, before discount. Returned invoices stay
// in the revenue figures; the return shows up as restocked goods, not as a
// reversal of the day's takings.
func (s *DashboardService) GetDashboardStats(ctx context.Context, tenantID uuid.UUID) (*report.DashboardStats, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -6)

	weekInvoices, err := s.invoiceRepo.FindByDateRange(ctx, tenantID, weekStart, now)
	if err != nil {
		return nil, err
	}

	costs, err := s.productCosts(ctx, tenantID, weekInvoices)
	if err != nil {
		return nil, err
	}

	stats := &report.DashboardStats{
		TodaySales:    decimal.Zero,
		TodayProfit:   decimal.Zero,
		TodayExpenses: decimal.Zero,
	}

	for _, inv := range weekInvoices {
		if !inv.Date.Before(todayStart) {
			stats.TodaySales = stats.TodaySales.Add(inv.TotalAmount)
			stats.TodayProfit = stats.TodayProfit.Add(invoiceProfit(inv, costs))
		}
	}

	expenses, err := s.expenseRepo.SumByDateRange(ctx, tenantID, todayStart, now)
	if err != nil {
		return nil, err
	}
	stats.TodayExpenses = expenses

	lowStock, err := s.productRepo.FindLowStock(ctx, tenantID, 5)
	if err != nil {
		return nil, err
	}
	for _, p := range lowStock {
		stats.LowStockProducts = append(stats.LowStockProducts, report.LowStockProduct{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.StockQuantity,
			Threshold: p.LowStockAlert,
		})
	}

	recent, err := s.recentSales(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	stats.RecentSales = recent

	stats.PaymentMethods = paymentMix(weekInvoices)
	stats.TopProducts = topProducts(weekInvoices, 5)
	stats.WeeklyTrend = dailyTrend(weekInvoices, costs, todayStart)

	return stats, nil
}

// recentSales resolves customer names for the latest five invoices
func (s *DashboardService) recentSales(ctx context.Context, tenantID uuid.UUID) ([]report.RecentSale, error) {
	invoices, err := s.invoiceRepo.FindRecent(ctx, tenantID, 5)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]uuid.UUID, 0, len(invoices))
	for _, inv := range invoices {
		if inv.CustomerID != nil {
			customerIDs = append(customerIDs, *inv.CustomerID)
		}
	}

	names := make(map[uuid.UUID]string, len(customerIDs))
	if len(customerIDs) > 0 {
		customers, err := s.customerRepo.FindByIDs(ctx, tenantID, customerIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			names[c.ID] = c.Name
		}
	}

	sales := make([]report.RecentSale, 0, len(invoices))
	for _, inv := range invoices {
		name := WalkInCustomerName
		if inv.CustomerID != nil {
			if n, ok := names[*inv.CustomerID]; ok {
				name = n
			}
		}
		status := "Paid"
		if inv.IsCredit() {
			status = "Credit"
		}
		sales = append(sales, report.RecentSale{
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  name,
			Amount:        inv.TotalAmount,
			PaymentStatus: status,
			Date:          inv.Date,
		})
	}
	return sales, nil
}

// productCosts loads current cost prices for every product on the invoices
func (s *DashboardService) productCosts(ctx context.Context, tenantID uuid.UUID, invoices []*trade.Invoice) (map[uuid.UUID]decimal.Decimal, error) {
	return loadProductCosts(ctx, s.productRepo, tenantID, invoices)
}

func loadProductCosts(ctx context.Context, productRepo catalog.ProductRepository, tenantID uuid.UUID, invoices []*trade.Invoice) (map[uuid.UUID]decimal.Decimal, error) {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, inv := range invoices {
		for _, item := range inv.Items {
			if _, ok := seen[item.ProductID]; !ok {
				seen[item.ProductID] = struct{}{}
				ids = append(ids, item.ProductID)
			}
		}
	}

	costs := make(map[uuid.UUID]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return costs, nil
	}
	products, err := productRepo.FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		costs[p.ID] = p.CostPrice
	}
	return costs, nil
}

// lineCOGS prices a sold line at the lower of current cost and the sale
// price it actually fetched, so a cost entered above the sale price cannot
// push the line's margin negative.
func lineCOGS(item trade.InvoiceItem, costs map[uuid.UUID]decimal.Decimal) decimal.Decimal {
	cost, ok := costs[item.ProductID]
	if !ok {
		cost = decimal.Zero
	}
	if cost.GreaterThan(item.UnitPrice) {
		cost = item.UnitPrice
	}
	return cost.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func invoiceProfit(inv *trade.Invoice, costs map[uuid.UUID]decimal.Decimal) decimal.Decimal {
	profit := inv.TotalAmount
	for _, item := range inv.Items {
		profit = profit.Sub(lineCOGS(item, costs))
	}
	return profit
}

func paymentMix(invoices []*trade.Invoice) []report.PaymentMethodShare {
	type acc struct {
		count  int
		amount decimal.Decimal
	}
	byMethod := make(map[string]*acc)
	for _, inv := range invoices {
		a, ok := byMethod[string(inv.PaymentMethod)]
		if !ok {
			a = &acc{amount: decimal.Zero}
			byMethod[string(inv.PaymentMethod)] = a
		}
		a.count++
		a.amount = a.amount.Add(inv.TotalAmount)
	}

	mix := make([]report.PaymentMethodShare, 0, len(byMethod))
	for method, a := range byMethod {
		mix = append(mix, report.PaymentMethodShare{
			Method: method,
			Count:  a.count,
			Amount: a.amount,
		})
	}
	sort.Slice(mix, func(a, b int) bool { return mix[a].Amount.GreaterThan(mix[b].Amount) })
	return mix
}

func topProducts(invoices []*trade.Invoice, limit int) []report.ProductSales {
	byProduct := make(map[uuid.UUID]*report.ProductSales)
	for _, inv := range invoices {
		for _, item := range inv.Items {
			p, ok := byProduct[item.ProductID]
			if !ok {
				p = &report.ProductSales{ProductID: item.ProductID, Name: item.ProductName, Revenue: decimal.Zero}
				byProduct[item.ProductID] = p
			}
			p.Quantity += item.Quantity
			p.Revenue = p.Revenue.Add(item.Amount)
		}
	}

	top := make([]report.ProductSales, 0, len(byProduct))
	for _, p := range byProduct {
		top = append(top, *p)
	}
	sort.Slice(top, func(a, b int) bool {
		if top[a].Quantity != top[b].Quantity {
			return top[a].Quantity > top[b].Quantity
		}
		return top[a].Revenue.GreaterThan(top[b].Revenue)
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

func dailyTrend(invoices []*trade.Invoice, costs map[uuid.UUID]decimal.Decimal, todayStart time.Time) []report.DailyTotal {
	trend := make([]report.DailyTotal, 7)
	for i := range trend {
		trend[i] = report.DailyTotal{
			Date:   todayStart.AddDate(0, 0, i-6),
			Total:  decimal.Zero,
			Profit: decimal.Zero,
		}
	}
	for _, inv := range invoices {
		day := time.Date(inv.Date.Year(), inv.Date.Month(), inv.Date.Day(), 0, 0, 0, 0, todayStart.Location())
		idx := 6 + int(day.Sub(todayStart).Hours()/24)
		if idx < 0 || idx > 6 {
			continue
		}
		trend[idx].Total = trend[idx].Total.Add(inv.TotalAmount)
		trend[idx].Profit = trend[idx].Profit.Add(invoiceProfit(inv, costs))
	}
	return trend
}
