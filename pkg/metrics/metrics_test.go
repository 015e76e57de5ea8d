package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if BookOperationsTotal == nil {
		t.Error("BookOperationsTotal未初始化")
	}
}

// TestCounterVec 测试CounterVec指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/v1/books", "status": "200"}
	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	IncCounterVec(HTTPRequestsTotal, labels)
	IncCounterVec(HTTPRequestsTotal, map[string]string{"method": "POST", "path": "/api/v1/books", "status": "201"})
	IncCounterVec(HTTPRequestsTotal, labels)

	if got := getCounterVecValue(t, HTTPRequestsTotal, labels) - before; got != 2 {
		t.Errorf("CounterVec值错误: expected=2, got=%f", got)
	}
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()
	SetGauge(HTTPRequestsInProgress, 0)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	if v := getGaugeValue(t, HTTPRequestsInProgress); v != 2 {
		t.Errorf("Gauge递增后值错误: expected=2, got=%f", v)
	}

	DecGauge(HTTPRequestsInProgress)
	if v := getGaugeValue(t, HTTPRequestsInProgress); v != 1 {
		t.Errorf("Gauge递减后值错误: expected=1, got=%f", v)
	}

	SetGauge(HTTPRequestsInProgress, 0)
}

// TestRecordBookOperation 测试业务指标
func TestRecordBookOperation(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"operation": "create", "result": ResultSuccess}
	before := getCounterVecValue(t, BookOperationsTotal, labels)

	RecordBookOperation("create", ResultSuccess)
	RecordBookOperation("create", ResultInvalid)

	if got := getCounterVecValue(t, BookOperationsTotal, labels) - before; got != 1 {
		t.Errorf("book_operations_total值错误: expected=1, got=%f", got)
	}
}

// TestSetBooksStored 测试图书数量Gauge
func TestSetBooksStored(t *testing.T) {
	InitMetrics()

	SetBooksStored(3)
	if v := getGaugeValue(t, BooksStored); v != 3 {
		t.Errorf("books_stored值错误: expected=3, got=%f", v)
	}
}

// TestHistogramVec 测试HistogramVec指标
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "DELETE", "path": "/api/v1/books/:id"}
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.1)

	var metric dto.Metric
	histogram := HTTPRequestDuration.With(labels)
	if err := histogram.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("读取HistogramVec值失败: %v", err)
	}
	if c := metric.Histogram.GetSampleCount(); c != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", c)
	}
}

// TestHandler 测试/metrics端点输出
func TestHandler(t *testing.T) {
	InitMetrics()
	RecordBookOperation("list", ResultSuccess)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(w.Body)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码错误: %d", w.Code)
	}
	if !strings.Contains(string(body), "book_operations_total") {
		t.Error("输出中缺少book_operations_total")
	}
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	counter := counterVec.With(labels)
	if err := counter.(prometheus.Counter).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}
