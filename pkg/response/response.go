package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// ErrorBody 统一错误响应结构
// 设计说明：
// 1. 成功时直接返回资源本身（图书对象或图书数组），HTTP状态码表达结果
// 2. 失败时返回Code+Message，Code是业务错误码，方便客户端细分错误类型
// 3. 内部错误原因只写日志，不出现在响应中
type ErrorBody struct {
	Code    int    `json:"code" example:"40402"`
	Message string `json:"message" example:"图书不存在"`
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应（用于创建资源）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204响应（用于删除资源）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := uc.Execute(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := apperrors.HTTPStatus(appErr.Code)

	// 服务端错误记录完整原因，客户端只看到Message
	log := logger.WithContext(c.Request.Context())
	if apperrors.IsServerError(appErr.Code) {
		log.Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err),
		)
	} else {
		log.Debug("request rejected",
			zap.Int("code", appErr.Code),
			zap.String("message", appErr.Message),
		)
	}

	_ = c.Error(err)
	c.JSON(status, ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}
