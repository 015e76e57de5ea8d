// Package router 注册全部HTTP路由和全局中间件
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookshelf/docs" // 注册swagger文档
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/response"
	"github.com/xiebiao/bookshelf/pkg/validator"
)

// Options 路由选项
type Options struct {
	Mode           string // debug | release | test
	MetricsEnabled bool
	MetricsPath    string
	SwaggerEnabled bool // release模式下始终关闭
}

// New 创建Gin引擎并注册路由
//
// 路由表:
//
//	GET    /ping                 存活检查
//	GET    /health               就绪检查
//	GET    /metrics              Prometheus指标
//	GET    /swagger/*any         Swagger UI
//	POST   /api/v1/books         创建
//	GET    /api/v1/books         列表
//	GET    /api/v1/books/:id     详情
//	PUT    /api/v1/books/:id     整体更新
//	PATCH  /api/v1/books/:id     部分更新
//	DELETE /api/v1/books/:id     删除
//
// 图书路由同时挂载在无前缀的/books下
func New(opts Options, bookHandler *handler.BookHandler, healthHandler *handler.HealthHandler) (*gin.Engine, error) {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	if err := validator.Register(); err != nil {
		return nil, fmt.Errorf("注册校验规则失败: %w", err)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Tracing(),
		middleware.Logger(),
	)
	if opts.MetricsEnabled {
		r.Use(middleware.Metrics())
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(metrics.Handler()))
	}

	r.GET("/ping", healthHandler.Ping)
	r.GET("/health", healthHandler.Health)

	// 生产环境不暴露接口文档
	if opts.SwaggerEnabled && gin.Mode() != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerBookRoutes(r.Group("/api/v1/books"), bookHandler)
	registerBookRoutes(r.Group("/books"), bookHandler)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrRouteNotFound)
	})

	return r, nil
}

func registerBookRoutes(g *gin.RouterGroup, h *handler.BookHandler) {
	g.POST("", h.CreateBook)
	g.GET("", h.ListBooks)
	g.GET("/:id", h.GetBook)
	g.PUT("/:id", h.ReplaceBook)
	g.PATCH("/:id", h.PatchBook)
	g.DELETE("/:id", h.DeleteBook)
}
