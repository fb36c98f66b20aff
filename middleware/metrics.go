package middleware

import (
	"time"

	"gobookhotel/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		utils.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
