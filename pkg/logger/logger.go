// Package logger 基于zap的结构化日志
//
// 进程级logger在启动时通过Set安装，业务代码使用Get或WithContext获取。
// 未安装时返回Nop logger，保证单元测试无需初始化日志。
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContextKey context键类型，避免与其他包冲突
type ContextKey string

// RequestIDKey 请求ID在context中的键
const RequestIDKey ContextKey = "request_id"

// Config 日志配置
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

var global atomic.Pointer[zap.Logger]

// New 根据配置创建logger
// json格式使用Production配置，console格式使用Development配置（彩色级别）
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}

	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "timestamp"
		zcfg.EncoderConfig.MessageKey = "message"
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableCaller = !cfg.EnableCaller

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	zcfg.OutputPaths = []string{output}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// Set 安装进程级logger
func Set(l *zap.Logger) {
	global.Store(l)
}

// Get 返回进程级logger，未安装时返回Nop
func Get() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Sync 刷新缓冲区，退出前调用
func Sync() error {
	if l := global.Load(); l != nil {
		// stdout/stderr在部分平台上Sync会返回EINVAL，忽略即可
		if err := l.Sync(); err != nil && !isStdSyncError(err) {
			return err
		}
	}
	return nil
}

// WithContext 附加请求级字段（request_id、trace_id）
func WithContext(ctx context.Context) *zap.Logger {
	l := Get()

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		l = l.With(zap.String("request_id", requestID))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With(zap.String("trace_id", sc.TraceID().String()))
	}

	return l
}

// ContextWithRequestID 把请求ID写入context
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func isStdSyncError(err error) bool {
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		return false
	}
	return pathErr.Path == "/dev/stdout" || pathErr.Path == "/dev/stderr"
}
