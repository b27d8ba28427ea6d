package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/domain"
	"github.com/pizzariapopovici/orderapi/internal/repository"
	apperrors "github.com/pizzariapopovici/orderapi/pkg/errors"
)

const operatorContextKey = "operator"

// AuthMiddleware resolves a Bearer token to a console operator. Expired
// sessions are revoked on sight.
func AuthMiddleware(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		token, err := uuid.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		session, err := repos.Session.GetByToken(c.Request.Context(), token)
		if err != nil {
			if _, ok := err.(*apperrors.ErrNotFound); !ok {
				logger.Error("Failed to look up operator session", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if time.Now().After(session.ExpiresAt) {
			if err := repos.Session.Delete(c.Request.Context(), token); err != nil {
				logger.Warn("Failed to revoke expired session", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		operator, err := repos.Operator.GetByID(c.Request.Context(), session.OperatorID)
		if err != nil || !operator.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(operatorContextKey, operator)
		c.Next()
	}
}

// GetOperatorFromContext returns the authenticated operator set by
// AuthMiddleware
func GetOperatorFromContext(c *gin.Context) (*domain.Operator, bool) {
	value, exists := c.Get(operatorContextKey)
	if !exists {
		return nil, false
	}
	operator, ok := value.(*domain.Operator)
	return operator, ok
}
