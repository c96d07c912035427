package handler

import (
	"github.com/gin-gonic/gin"

	auditapp "github.com/retailpos/backend/internal/application/audit"
)

// AuditHandler exposes the read-only audit trail
type AuditHandler struct {
	BaseHandler
	audits *auditapp.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(audits *auditapp.AuditService) *AuditHandler {
	return &AuditHandler{audits: audits}
}

// RegisterRoutes registers audit routes
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	audits := rg.Group("/audit-logs")
	{
		audits.GET("", h.List)
		audits.GET("/suspicious", h.ListSuspicious)
	}
}

// List returns the audit trail, newest first
func (h *AuditHandler) List(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	page, err := h.audits.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	Page(c, page)
}

// ListSuspicious returns only reversal-type entries worth reviewing
func (h *AuditHandler) ListSuspicious(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	page, err := h.audits.ListSuspicious(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	Page(c, page)
}
