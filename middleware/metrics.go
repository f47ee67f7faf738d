package middleware

import (
	"strconv"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per route
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		utils.ActiveRequests.Inc()
		defer utils.ActiveRequests.Dec()

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start).Seconds()

		utils.HTTPRequestsTotal.WithLabelValues(
			method,
			path,
			strconv.Itoa(status),
		).Inc()

		utils.HTTPRequestDuration.WithLabelValues(
			method,
			path,
		).Observe(duration)
	}
}
