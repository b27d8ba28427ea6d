package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/backend"
	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// HandleListUsers handles GET /v1/admin/users
func HandleListUsers(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := be.ListUsers(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, "list users", err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// HandleGetUser handles GET /v1/admin/users/:id
func HandleGetUser(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		user, err := be.GetUser(c.Request.Context(), id)
		if err != nil {
			respondBackendError(c, logger, "get user", err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// HandleCreateUser handles POST /v1/admin/users
func HandleCreateUser(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		created, err := be.CreateUser(c.Request.Context(), user)
		if err != nil {
			respondBackendError(c, logger, "create user", err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// HandleUpdateUser handles PUT /v1/admin/users/:id
func HandleUpdateUser(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var user domain.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		updated, err := be.UpdateUser(c.Request.Context(), id, user)
		if err != nil {
			respondBackendError(c, logger, "update user", err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeleteUser handles DELETE /v1/admin/users/:id
func HandleDeleteUser(be *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := be.DeleteUser(c.Request.Context(), id); err != nil {
			respondBackendError(c, logger, "delete user", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
