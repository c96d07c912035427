package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auditapp "github.com/retailpos/backend/internal/application/audit"
	catalogapp "github.com/retailpos/backend/internal/application/catalog"
	financeapp "github.com/retailpos/backend/internal/application/finance"
	partnerapp "github.com/retailpos/backend/internal/application/partner"
	reportapp "github.com/retailpos/backend/internal/application/report"
	tradeapp "github.com/retailpos/backend/internal/application/trade"
	"github.com/retailpos/backend/internal/infrastructure/config"
	"github.com/retailpos/backend/internal/infrastructure/logger"
	"github.com/retailpos/backend/internal/infrastructure/persistence"
	"github.com/retailpos/backend/internal/interfaces/http/dto"
	"github.com/retailpos/backend/internal/interfaces/http/handler"
	"github.com/retailpos/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar registers a set of routes on the versioned API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// New builds the gin engine with all middleware, handlers and routes wired
// against the given database.
func New(cfg *config.Config, log *zap.Logger, db *persistence.Database) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterValidations()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	// repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	returnRepo := persistence.NewGormSalesReturnRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	auditRepo := persistence.NewGormAuditLogRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	// application services
	productService := catalogapp.NewProductService(productRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	invoiceService := tradeapp.NewInvoiceService(scope, invoiceRepo)
	purchaseService := tradeapp.NewPurchaseService(scope, purchaseRepo)
	returnService := tradeapp.NewSalesReturnService(scope, returnRepo)
	paymentService := tradeapp.NewPaymentService(scope)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	auditService := auditapp.NewAuditService(auditRepo)
	dashboardService := reportapp.NewDashboardService(invoiceRepo, productRepo, customerRepo, expenseRepo)
	reportService := reportapp.NewReportService(invoiceRepo, productRepo, customerRepo, expenseRepo)

	// probes live outside the tenant-scoped API group
	handler.NewSystemHandler(db).RegisterRoutes(engine)

	api := engine.Group("/api/v1")
	api.Use(middleware.Tenant(log, middleware.TenantConfig{}))

	registrars := []RouteRegistrar{
		handler.NewProductHandler(productService),
		handler.NewCategoryHandler(categoryService),
		handler.NewCustomerHandler(customerService, paymentService),
		handler.NewSupplierHandler(supplierService, paymentService),
		handler.NewInvoiceHandler(invoiceService),
		handler.NewPurchaseHandler(purchaseService),
		handler.NewSalesReturnHandler(returnService),
		handler.NewExpenseHandler(expenseService),
		handler.NewAuditHandler(auditService),
		handler.NewReportHandler(dashboardService, reportService),
	}
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}

	return engine
}
