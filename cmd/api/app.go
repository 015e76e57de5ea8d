package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// App HTTP服务
type App struct {
	cfg    *config.Config
	engine *gin.Engine
}

func newApp(cfg *config.Config, engine *gin.Engine) *App {
	return &App{cfg: cfg, engine: engine}
}

// provideRouterOptions 从配置提取路由选项
func provideRouterOptions(cfg *config.Config) router.Options {
	return router.Options{
		Mode:           cfg.Server.Mode,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
		SwaggerEnabled: cfg.Swagger.Enabled,
	}
}

// provideNoPinger 内存仓储没有需要检查的外部依赖
func provideNoPinger() handler.Pinger {
	return nil
}

// Run 启动HTTP服务,ctx取消后优雅关闭
// 关闭时等待进行中的请求完成,最长server.shutdown_timeout
func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("监听端口失败: %w", err)
	}

	srv := &http.Server{
		Handler:      a.engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Get().Info("服务启动成功", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("服务异常退出: %w", err)
	case <-ctx.Done():
	}

	logger.Get().Info("正在关闭服务")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}
	logger.Get().Info("服务已关闭")

	return nil
}
