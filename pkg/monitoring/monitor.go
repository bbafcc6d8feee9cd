package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fcc_dashboard"

// unmatchedRoute 404 请求不按原始路径打标签，避免标签基数失控
const unmatchedRoute = "unmatched"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "route"},
	)

	KPICurrent = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kpi_current",
			Help:      "Latest value of each dashboard KPI",
		},
		[]string{"kpi"},
	)

	KPIDelta = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kpi_delta",
			Help:      "First-to-last change of each dashboard KPI",
		},
		[]string{"kpi"},
	)

	ChartRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_renders_total",
			Help:      "Chart image requests by kind and cache outcome",
		},
		[]string{"kind", "cache"},
	)

	Exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Static dashboard exports by result",
		},
		[]string{"result"},
	)

	ExportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Time spent writing one static export",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8),
		},
	)
)

var registerOnce sync.Once

// Init 注册指标；重复调用安全
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequests,
			HTTPLatency,
			KPICurrent,
			KPIDelta,
			ChartRenders,
			Exports,
			ExportDuration,
		)
	})
}

// ObserveExport 记录一次导出的耗时和结果
func ObserveExport(start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	Exports.WithLabelValues(result).Inc()
	ExportDuration.Observe(time.Since(start).Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
