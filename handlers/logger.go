package handlers

import (
	"errors"
	"io"
	"net/http"

	"eventra/middleware"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger from the Gin context or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.ContextLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		getLogger(c).Debug("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for payloads whose fields are all optional.
// An empty body binds as the zero request.
func bindOptionalJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	getLogger(c).Debug("Invalid request body", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
	return false
}
