package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/infrastructure/logger"
	"github.com/retailpos/backend/internal/interfaces/http/dto"
	"github.com/retailpos/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common response helpers for API handlers
type BaseHandler struct{}

// Success sends a 200 response with data
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response with data
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Page sends a 200 response with items and pagination meta
func Page[T any](c *gin.Context, page shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(page.Items, dto.MetaFromPage(page)))
}

// Error translates an error into the API envelope. Domain errors keep their
// code; unexpected errors are logged and reported as opaque 500s.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	code, message, status := dto.FromError(err)
	if status == http.StatusInternalServerError {
		logger.L(c.Request.Context()).Error("unhandled error", zap.Error(err))
	}
	c.JSON(status, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 validation error response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeValidation, message))
}

// tenantID reads the tenant set by the tenant middleware
func (h *BaseHandler) tenantID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(middleware.TenantIDKey)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("TENANT_REQUIRED", "Missing tenant scope"))
		return uuid.Nil, false
	}
	tenantID, ok := value.(uuid.UUID)
	if !ok || tenantID == uuid.Nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("TENANT_REQUIRED", "Missing tenant scope"))
		return uuid.Nil, false
	}
	return tenantID, true
}

// pathID parses a UUID path parameter, replying 400 on failure
func (h *BaseHandler) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// bindFilter binds common list query parameters, replying 400 on failure
func (h *BaseHandler) bindFilter(c *gin.Context) (shared.Filter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return shared.Filter{}, false
	}
	return req.ToFilter(), true
}
