package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/backend"
)

// HandleDashboardStats handles GET /v1/admin/dashboard/stats. startDate and
// endDate query parameters (YYYY-MM-DD) are forwarded as-is; without them
// the backend reports today's numbers.
func HandleDashboardStats(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := be.DashboardStats(
			c.Request.Context(),
			c.Query("startDate"),
			c.Query("endDate"),
		)
		if err != nil {
			respondBackendError(c, logger, "dashboard stats", err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
