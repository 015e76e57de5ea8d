package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/bookshelf/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// observeLogs 安装可观测logger,测试结束后恢复
func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Get()
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(prev) })
	return logs
}

func TestRecovery(t *testing.T) {
	logs := observeLogs(t)

	r := gin.New()
	r.Use(Recovery(), RequestID())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestLogger(t *testing.T) {
	logs := observeLogs(t)

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/books/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/books/7", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/books/7", fields["path"])
	assert.Equal(t, "/books/:id", fields["route"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var fromCtx, fromGin string
	r.GET("/", func(c *gin.Context) {
		fromCtx, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		fromGin = GetRequestID(c)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, fromCtx)
	assert.Equal(t, fromCtx, fromGin)
	assert.Equal(t, fromCtx, w.Header().Get(HeaderRequestID))
}

func TestTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	r := gin.New()
	r.Use(Tracing())
	r.GET("/books/:id", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/books/1", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /books/:id", spans[0].Name())
	assert.Equal(t, "Error", spans[0].Status().Code.String())
}
