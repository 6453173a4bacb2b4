// Package middleware holds the gin middleware chain of the HTTP server.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"marketing-ai-hub/backend/internal/observability/logger"
	"marketing-ai-hub/backend/internal/observability/metrics"
)

// internalErrorBody matches the {"error": ...} shape of every handler.
var internalErrorBody = gin.H{"error": "internal server error"}

// Recovery answers a panicking handler with 500 instead of dropping the
// connection. The panic value and stack go to the log, never to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			route := routeLabel(c)
			metrics.HTTPPanicsTotal.WithLabelValues(route).Inc()
			logger.Error(c.Request.Context(), "handler panicked",
				fmt.Errorf("%v", rec),
				"route", route,
				"method", c.Request.Method,
				"stack", string(debug.Stack()),
			)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorBody)
		}()

		c.Next()
	}
}
