package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/pkg/logger"
)

// slowRequestThreshold 超过该耗时记录Warn
const slowRequestThreshold = 3 * time.Second

// Logger 访问日志中间件
// 记录方法、路径、状态码、耗时、客户端IP,不记录请求体
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		log := logger.WithContext(c.Request.Context())
		switch {
		case status >= 500:
			log.Error("request", fields...)
		case latency > slowRequestThreshold:
			log.Warn("slow request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
