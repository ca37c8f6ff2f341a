package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookbuddy/server/pkg/metrics"
)

// Metrics HTTP监控中间件
// 设计说明:
// 1. 使用c.FullPath()作为path标签(路由模板,如/api/v1/users/:id)
//    而不是c.Request.URL.Path,避免标签基数爆炸
// 2. 未匹配到路由时FullPath为空,统一记为"unmatched"
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		defer metrics.DecGauge(metrics.HTTPRequestsInProgress)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": method,
			"path":   path,
			"status": status,
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
			"method": method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}
