package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"marketing-ai-hub/backend/internal/observability/logger"
)

// AccessLog writes one structured line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if status >= 500 {
			logger.Warn(c.Request.Context(), "request completed", args...)
			return
		}
		logger.Info(c.Request.Context(), "request completed", args...)
	}
}
