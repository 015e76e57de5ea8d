package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// Pinger 依赖健康检查(数据库连接池)
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 存活与就绪检查
type HealthHandler struct {
	pinger  Pinger
	timeout time.Duration
}

// NewHealthHandler pinger为nil时只检查进程存活(内存仓储)
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger, timeout: 2 * time.Second}
}

// Ping 存活检查
// @Summary  存活检查
// @Tags     系统
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health 就绪检查,数据库不可用时返回503
// @Summary  就绪检查
// @Tags     系统
// @Produce  json
// @Success  200 {object} dto.HealthResponse
// @Failure  503 {object} response.ErrorBody "数据库不可用"
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.pinger == nil {
		response.OK(c, dto.HealthResponse{Status: "healthy"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		response.Error(c, apperrors.WithCause(apperrors.ErrUnavailable, err))
		return
	}

	response.OK(c, dto.HealthResponse{Status: "healthy", Database: "up"})
}
