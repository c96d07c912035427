package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/retailpos/backend/internal/application/trade"
)

// InvoiceHandler handles sale invoice API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoices *tradeapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoices *tradeapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.CreateSale)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.POST("/:id/return", h.Return)
	}
}

// CreateSale completes a point-of-sale checkout
func (h *InvoiceHandler) CreateSale(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	var req tradeapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoices.CreateSale(c.Request.Context(), tenantID, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, invoice)
}

// List returns a paginated invoice listing, newest first
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	page, err := h.invoices.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	Page(c, page)
}

// Get returns a single invoice with its lines
func (h *InvoiceHandler) Get(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoices.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, invoice)
}

// ReturnRequest identifies who processed the return
type ReturnRequest struct {
	Username string `json:"username"`
}

// Return reverses a completed invoice in full
func (h *InvoiceHandler) Return(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoices.ReturnInvoice(c.Request.Context(), tenantID, id, req.Username)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, invoice)
}
