package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/bookshelf/pkg/logger"
)

// HeaderRequestID 请求ID响应头
const HeaderRequestID = "X-Request-ID"

// RequestID 请求ID中间件
// 1. 优先沿用上游传入的X-Request-ID,否则生成UUID
// 2. 写入响应头、gin.Context和request context(日志自动带上request_id)
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.New().String()
		}

		c.Set(string(logger.RequestIDKey), requestID)
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}

// GetRequestID 从gin.Context获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(logger.RequestIDKey))
}
