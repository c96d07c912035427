package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/infrastructure/logger"
	"github.com/retailpos/backend/internal/infrastructure/persistence/tenant"
	"github.com/retailpos/backend/internal/interfaces/http/dto"
)

const (
	// TenantHeaderKey is the header carrying the tenant identifier
	TenantHeaderKey = "X-Tenant-ID"
	// TenantIDKey is the gin context key under which the parsed tenant ID is stored
	TenantIDKey = "tenant_id"
)

// TenantConfig configures the tenant middleware
type TenantConfig struct {
	// SkipPaths lists exact request paths that do not require a tenant
	SkipPaths []string
}

// Tenant extracts and validates the tenant ID from the X-Tenant-ID header.
// The parsed ID is stored both in the gin context and in the request context
// so repositories and loggers downstream see the same tenant scope.
func Tenant(log *zap.Logger, cfg TenantConfig) gin.HandlerFunc {
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		raw := c.GetHeader(TenantHeaderKey)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(shared.ErrTenantRequired.Code, "Missing "+TenantHeaderKey+" header"))
			return
		}

		tenantID, err := tenant.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse("INVALID_TENANT_ID", "Tenant ID must be a valid UUID"))
			return
		}

		c.Set(TenantIDKey, tenantID)

		ctx := tenant.WithTenant(c.Request.Context(), tenantID)
		ctx, _ = logger.WithTenantID(ctx, log, tenantID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
