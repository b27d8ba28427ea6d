package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/pizzariapopovici/orderapi/pkg/errors"
)

// parseID reads a numeric path parameter, replying 400 on garbage
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondBackendError maps an upstream failure to a response: not-found
// passes through as 404, anything else is logged and reported as a bad
// gateway.
func respondBackendError(c *gin.Context, logger *zap.Logger, action string, err error) {
	if notFound, ok := err.(*apperrors.ErrNotFound); ok {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Resource + " not found"})
		return
	}
	logger.Error("Backend call failed", zap.String("action", action), zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "backend request failed"})
}
