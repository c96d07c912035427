package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/retailpos/backend/internal/application/report"
)

// ReportHandler exposes dashboard and period reporting endpoints
type ReportHandler struct {
	BaseHandler
	dashboard *reportapp.DashboardService
	reports   *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(dashboard *reportapp.DashboardService, reports *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, reports: reports}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/period", h.Period)
	}
}

// Dashboard returns today's headline figures and operational snapshots
func (h *ReportHandler) Dashboard(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	stats, err := h.dashboard.GetDashboardStats(c.Request.Context(), tenantID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, stats)
}

// PeriodReportRequest bounds the reporting window by calendar date
type PeriodReportRequest struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// Period returns the profit and loss summary for a date range. The range is
// inclusive of both days.
func (h *ReportHandler) Period(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	var req PeriodReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Query parameters 'from' and 'to' must be dates in YYYY-MM-DD format")
		return
	}
	if req.To.Before(req.From) {
		h.BadRequest(c, "'to' must not be before 'from'")
		return
	}

	// the service takes a half-open range, so push the end past the last day
	report, err := h.reports.GenerateReport(c.Request.Context(), tenantID, req.From, req.To.AddDate(0, 0, 1))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, report)
}
