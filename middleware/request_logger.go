package middleware

import (
	"net"
	"strings"
	"time"

	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// clientIP prefers proxy headers over the socket address.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}

// ContextLogger holds a request scoped logger for handlers.
const ContextLogger = "logger"

// RequestLogger writes one access log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(ContextLogger, utils.GetLogger().With(
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		))
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", clientIP(c)),
		}
		if userID := UserID(c); userID != "" {
			fields = append(fields, zap.String("userID", userID))
		}

		logger := utils.GetLogger()
		switch {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
