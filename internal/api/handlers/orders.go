package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/backend"
	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// HandleListOrders handles GET /v1/admin/orders
func HandleListOrders(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := be.ListOrders(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, "list orders", err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// HandleGetOrder handles GET /v1/admin/orders/:id
func HandleGetOrder(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		order, err := be.GetOrder(c.Request.Context(), id)
		if err != nil {
			respondBackendError(c, logger, "get order", err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// HandleUpdateOrder handles PUT /v1/admin/orders/:id
func HandleUpdateOrder(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req domain.OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		updated, err := be.UpdateOrder(c.Request.Context(), id, req)
		if err != nil {
			respondBackendError(c, logger, "update order", err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeleteOrder handles DELETE /v1/admin/orders/:id
func HandleDeleteOrder(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := be.DeleteOrder(c.Request.Context(), id); err != nil {
			respondBackendError(c, logger, "delete order", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
