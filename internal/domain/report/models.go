package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardStats is the snapshot shown on the home screen
type DashboardStats struct {
	TodaySales       decimal.Decimal      `json:"today_sales"`
	TodayProfit      decimal.Decimal      `json:"today_profit"`
	TodayExpenses    decimal.Decimal      `json:"today_expenses"`
	LowStockProducts []LowStockProduct    `json:"low_stock_products"`
	RecentSales      []RecentSale         `json:"recent_sales"`
	PaymentMethods   []PaymentMethodShare `json:"payment_methods"`
	TopProducts      []ProductSales       `json:"top_products"`
	WeeklyTrend      []DailyTotal         `json:"weekly_trend"`
}

// LowStockProduct is a product at or below its reorder threshold
type LowStockProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
}

// RecentSale is a row in the latest-sales widget
type RecentSale struct {
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status"`
	Date          time.Time       `json:"date"`
}

// PaymentMethodShare is one slice of the payment mix
type PaymentMethodShare struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// ProductSales is units sold for one product over a window
type ProductSales struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DailyTotal is one day of the sales trend
type DailyTotal struct {
	Date   time.Time       `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Profit decimal.Decimal `json:"profit"`
}

// PeriodReport is the full business report for a date range
type PeriodReport struct {
	From               time.Time            `json:"from"`
	To                 time.Time            `json:"to"`
	Revenue            decimal.Decimal      `json:"revenue"`
	Expenses           decimal.Decimal      `json:"expenses"`
	NetCashFlow        decimal.Decimal      `json:"net_cash_flow"`
	Profit             decimal.Decimal      `json:"profit"`
	GrowthPercent      decimal.Decimal      `json:"growth_percent"`
	AverageBasket      decimal.Decimal      `json:"average_basket"`
	RetentionPercent   decimal.Decimal      `json:"retention_percent"`
	Transactions       int64                `json:"transactions"`
	InventoryCostValue decimal.Decimal      `json:"inventory_cost_value"`
	ProjectedProfit    decimal.Decimal      `json:"projected_profit"`
	PeakHours          []HourlySales        `json:"peak_hours"`
	ProductMatrix      []ProductPerformance `json:"product_matrix"`
	TopCustomers       []CustomerSpend      `json:"top_customers"`
}

// HourlySales is transaction volume for one local-time hour
type HourlySales struct {
	Hour         int             `json:"hour"`
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// CustomerSpend is total spend for one linked customer
type CustomerSpend struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Name       string          `json:"name"`
	Spend      decimal.Decimal `json:"spend"`
	Invoices   int             `json:"invoices"`
}
