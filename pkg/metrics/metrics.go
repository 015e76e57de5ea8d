// Package metrics 提供基于Prometheus的指标收集
//
// # 指标一览
//
// HTTP层（由middleware.Metrics记录）：
//   - http_requests_total{method,path,status}      Counter
//   - http_request_duration_seconds{method,path}   Histogram
//   - http_requests_in_progress                    Gauge
//
// 业务层（由application层用例记录）：
//   - book_operations_total{operation,result}      Counter
//   - books_stored                                 Gauge（列表查询时刷新）
//
// path标签使用路由模板（/api/v1/books/:id）而不是实际URL，避免高基数。
//
// # 使用示例
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(metrics.Handler()))
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 操作结果标签
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

var (
	// initOnce 防止重复注册（重复注册会panic）
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// BookOperationsTotal 图书操作总数（Counter）
	// 标签：operation（create/list/get/update/delete）、result（success/not_found/invalid/error）
	BookOperationsTotal *prometheus.CounterVec

	// BooksStored 最近一次列表查询得到的图书数量（Gauge）
	BooksStored prometheus.Gauge
)

// InitMetrics 初始化所有Prometheus指标
//
// 使用promauto注册到默认Registry，可重复调用
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BookOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_operations_total",
				Help: "图书操作总数",
			},
			[]string{"operation", "result"},
		)

		BooksStored = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "books_stored",
				Help: "最近一次列表查询得到的图书数量",
			},
		)
	})
}

// Handler 暴露/metrics端点
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}

// RecordBookOperation 记录一次图书操作结果
// 未初始化时直接忽略（单元测试中不强制初始化指标）
func RecordBookOperation(operation, result string) {
	if BookOperationsTotal == nil {
		return
	}
	BookOperationsTotal.With(prometheus.Labels{
		"operation": operation,
		"result":    result,
	}).Inc()
}

// SetBooksStored 刷新图书数量，未初始化时忽略
func SetBooksStored(n int) {
	if BooksStored == nil {
		return
	}
	SetGauge(BooksStored, float64(n))
}
