package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// Metrics Prometheus指标中间件
// path标签使用路由模板,未匹配的路由统一记为unmatched
func Metrics() gin.HandlerFunc {
	metrics.InitMetrics()

	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncGauge(metrics.HTTPRequestsInProgress)

		c.Next()

		metrics.DecGauge(metrics.HTTPRequestsInProgress)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
			"method": c.Request.Method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}
