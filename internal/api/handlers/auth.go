package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pizzariapopovici/orderapi/internal/domain"
	"github.com/pizzariapopovici/orderapi/internal/repository"
	apperrors "github.com/pizzariapopovici/orderapi/pkg/errors"
)

const sessionLifetime = 24 * time.Hour

// LoginRequest is the operator login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

// HandleLogin handles POST /v1/auth/login
func HandleLogin(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		operator, err := repos.Operator.GetByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if _, ok := err.(*apperrors.ErrNotFound); !ok {
				logger.Error("Failed to look up operator", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if !operator.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		session := &domain.OperatorSession{
			OperatorID: operator.ID,
			ExpiresAt:  time.Now().Add(sessionLifetime),
		}
		if err := repos.Session.Create(c.Request.Context(), session); err != nil {
			logger.Error("Failed to create operator session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token:     session.Token.String(),
			Name:      operator.Name,
			Email:     operator.Email,
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		})
	}
}

// HandleLogout handles POST /v1/auth/logout. Revoking an unknown token is
// still a successful logout.
func HandleLogout(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, err := uuid.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid token"})
			return
		}

		if err := repos.Session.Delete(c.Request.Context(), token); err != nil {
			logger.Error("Failed to delete operator session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
