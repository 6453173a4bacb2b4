package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"marketing-ai-hub/backend/internal/observability/metrics"
)

const unmatchedRoute = "unmatched"

// routeLabel names the matched route the way the generation endpoints name
// themselves: "/api/generate-content" becomes "generate-content".
func routeLabel(c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		return unmatchedRoute
	}
	return strings.TrimPrefix(route, "/api/")
}

// Metrics counts requests and observes their latency per route. Requests to
// skipPaths, such as the scrape endpoint itself, are not recorded.
func Metrics(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := routeLabel(c)
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
