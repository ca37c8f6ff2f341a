// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型速记：
// - Counter（计数器）：只增不减的累计值，如HTTP请求总数
// - Gauge（仪表盘）：可增可减的瞬时值，如正在处理的请求数
// - Histogram（直方图）：观测值分布，自动计算分位数（P50/P90/P99）
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// 命名规范：
// - Counter以_total结尾（http_requests_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 避免高基数标签（不要用user_id做标签）
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// UserBooksAddedTotal 加入书架的图书总数（Counter）
	UserBooksAddedTotal prometheus.Counter

	// BooksImportedTotal 从Open Library导入的图书总数（Counter）
	BooksImportedTotal prometheus.Counter

	// ReviewsCreatedTotal 书评创建总数（Counter）
	ReviewsCreatedTotal prometheus.Counter

	// TrackersCreatedTotal 月度追踪器创建总数（Counter）
	TrackersCreatedTotal prometheus.Counter

	// TrackerBooksCompletedTotal 追踪器中标记完成的图书总数（Counter）
	TrackerBooksCompletedTotal prometheus.Counter

	// Open Library搜索指标

	// SearchRequestsTotal 搜索请求总数（Counter）
	// 标签：result（success/failure/rejected）
	SearchRequestsTotal *prometheus.CounterVec

	// SearchRequestDuration 搜索请求耗时（Histogram）
	SearchRequestDuration prometheus.Histogram

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数（Counter）
	// 标签：name（熔断器名称）、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
//
// 设计要点：
// 1. 使用promauto.New*自动注册到默认Registry
// 2. Counter使用*Vec支持标签（多维度统计）
// 3. Histogram的Buckets根据业务场景定制
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
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

	// 业务指标
	UserBooksAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_books_added_total",
			Help: "加入书架的图书总数",
		},
	)

	BooksImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_imported_total",
			Help: "从Open Library导入的图书总数",
		},
	)

	ReviewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "书评创建总数",
		},
	)

	TrackersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trackers_created_total",
			Help: "月度阅读追踪器创建总数",
		},
	)

	TrackerBooksCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_books_completed_total",
			Help: "追踪器中标记完成的图书总数",
		},
	)

	// Open Library搜索指标
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openlibrary_search_requests_total",
			Help: "Open Library搜索请求总数",
		},
		[]string{"result"}, // success/failure/rejected
	)

	SearchRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "openlibrary_search_duration_seconds",
			Help: "Open Library搜索请求耗时（秒）",
			// 外部HTTP调用通常较慢
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
	)

	// 熔断器指标
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
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

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
