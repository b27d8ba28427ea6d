package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/backend"
	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// HandleListItems handles GET /v1/admin/items
func HandleListItems(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := be.ListItems(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, "list items", err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// HandleCreateItem handles POST /v1/admin/items
func HandleCreateItem(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item domain.Item
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		created, err := be.CreateItem(c.Request.Context(), item)
		if err != nil {
			respondBackendError(c, logger, "create item", err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// HandleUpdateItem handles PUT /v1/admin/items/:id
func HandleUpdateItem(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var item domain.Item
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		updated, err := be.UpdateItem(c.Request.Context(), id, item)
		if err != nil {
			respondBackendError(c, logger, "update item", err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeleteItem handles DELETE /v1/admin/items/:id
func HandleDeleteItem(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := be.DeleteItem(c.Request.Context(), id); err != nil {
			respondBackendError(c, logger, "delete item", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleListItemSizes handles GET /v1/admin/item-sizes
func HandleListItemSizes(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sizes, err := be.ListItemSizes(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, "list item sizes", err)
			return
		}
		c.JSON(http.StatusOK, sizes)
	}
}

// HandleCreateItemSize handles POST /v1/admin/item-sizes
func HandleCreateItemSize(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var size domain.ItemSize
		if err := c.ShouldBindJSON(&size); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		created, err := be.CreateItemSize(c.Request.Context(), size)
		if err != nil {
			respondBackendError(c, logger, "create item size", err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// HandleUpdateItemSize handles PUT /v1/admin/item-sizes/:id
func HandleUpdateItemSize(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var size domain.ItemSize
		if err := c.ShouldBindJSON(&size); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		updated, err := be.UpdateItemSize(c.Request.Context(), id, size)
		if err != nil {
			respondBackendError(c, logger, "update item size", err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeleteItemSize handles DELETE /v1/admin/item-sizes/:id
func HandleDeleteItemSize(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := be.DeleteItemSize(c.Request.Context(), id); err != nil {
			respondBackendError(c, logger, "delete item size", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleListPaymentMethods handles GET /v1/admin/payment-methods
func HandleListPaymentMethods(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		methods, err := be.ListPaymentMethods(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, "list payment methods", err)
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// HandleCreatePaymentMethod handles POST /v1/admin/payment-methods
func HandleCreatePaymentMethod(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var method domain.PaymentMethod
		if err := c.ShouldBindJSON(&method); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		created, err := be.CreatePaymentMethod(c.Request.Context(), method)
		if err != nil {
			respondBackendError(c, logger, "create payment method", err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// HandleUpdatePaymentMethod handles PUT /v1/admin/payment-methods/:id
func HandleUpdatePaymentMethod(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var method domain.PaymentMethod
		if err := c.ShouldBindJSON(&method); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		updated, err := be.UpdatePaymentMethod(c.Request.Context(), id, method)
		if err != nil {
			respondBackendError(c, logger, "update payment method", err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeletePaymentMethod handles DELETE /v1/admin/payment-methods/:id
func HandleDeletePaymentMethod(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := be.DeletePaymentMethod(c.Request.Context(), id); err != nil {
			respondBackendError(c, logger, "delete payment method", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
