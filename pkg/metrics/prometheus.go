// Package metrics provides Prometheus metrics for the rubriq analysis service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the rubriq service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for an analysis service
	analysesCompleted prometheus.Counter
	analysisFailures  prometheus.Counter
	analysisLatency   prometheus.Histogram
	overallScore      prometheus.Histogram
	proficiencyLevels *prometheus.CounterVec
	dimensionScores   *prometheus.HistogramVec
	analyzerPanics    *prometheus.CounterVec

	// Request Quality Metrics
	validationFailures *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Outcome Feed Metrics - async usage recording pipeline
	feedSize        prometheus.Gauge
	feedCapacity    prometheus.Gauge
	feedUtilization prometheus.Gauge
	feedEnqueues    prometheus.Counter
	feedDequeues    prometheus.Counter
	feedDrops       prometheus.Counter

	// Recorder Metrics - outcome drain performance
	recorderActive  prometheus.Gauge
	recorderLatency prometheus.Histogram

	// Usage Tally Metrics - aggregate counters behind /stats
	tallyRecorded     prometheus.Gauge
	tallyAverageScore prometheus.Gauge

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
	serviceUptime        prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rubriq",
		subsystem:        "analysis",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics - conversation analyses and their results
	m.analysesCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_completed_total",
		Help:      "Total number of conversations analyzed successfully",
	})

	m.analysisFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_failures_total",
		Help:      "Total number of analyses rejected or failed",
	})

	m.analysisLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_latency_milliseconds",
		Help:      "Histogram of end-to-end analysis latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.overallScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "overall_score_points",
		Help:      "Distribution of overall proficiency scores (0-100)",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})

	m.proficiencyLevels = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "proficiency_level_total",
			Help:      "Total number of analyses per proficiency level",
		},
		[]string{"level"},
	)

	m.dimensionScores = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dimension_score_points",
			Help:      "Distribution of per-dimension scores (0-25)",
			Buckets:   prometheus.LinearBuckets(0, 5, 6),
		},
		[]string{"dimension"},
	)

	m.analyzerPanics = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "analyzer_panics_total",
			Help:      "Total number of recovered analyzer panics by dimension",
		},
		[]string{"dimension"},
	)

	// Request Quality Metrics - rejected payloads by violated rule
	m.validationFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_validation_failures_total",
			Help:      "Total number of rejected analyze requests by violated rule",
		},
		[]string{"rule"},
	)

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds (user experience)",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Outcome Feed Metrics - async usage recording pipeline
	m.feedSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "outcome_feed_size",
		Help:      "Current size of the outcome feed (backlog indicator)",
	})

	m.feedCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "outcome_feed_capacity",
		Help:      "Maximum outcome feed capacity",
	})

	m.feedUtilization = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "outcome_feed_utilization_ratio",
		Help:      "Outcome feed utilization ratio (current size / capacity)",
	})

	m.feedEnqueues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "outcome_feed_enqueue_total",
		Help:      "Total number of outcomes enqueued",
	})

	m.feedDequeues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "outcome_feed_dequeue_total",
		Help:      "Total number of outcomes dequeued",
	})

	m.feedDrops = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "outcome_feed_dropped_total",
		Help:      "Total number of outcomes dropped because the feed was full or closed",
	})

	// Recorder Metrics - outcome drain performance
	m.recorderActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recorder_active_count",
		Help:      "Number of active outcome recorders",
	})

	m.recorderLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recorder_latency_milliseconds",
		Help:      "Outcome recording latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Usage Tally Metrics - aggregate counters behind /stats
	m.tallyRecorded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "usage_analyses_recorded",
		Help:      "Total number of analyses recorded in the usage tally",
	})

	m.tallyAverageScore = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "usage_average_score",
		Help:      "Running average overall score across recorded analyses",
	})

	// Enhanced Error Metrics - Detailed error tracking
	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total number of errors by type",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "error_latency_milliseconds",
			Help:      "Latency of operations that resulted in errors",
			Buckets:   m.histogramBuckets,
		},
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	m.serviceUptime = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "service_uptime_seconds",
		Help:      "Seconds since the service started",
	})
}

// RecordAnalysisCompleted increments the completed analyses counter.
func RecordAnalysisCompleted() {
	globalManager.analysesCompleted.Inc()
}

// RecordAnalysisFailure increments the failed analyses counter.
func RecordAnalysisFailure() {
	globalManager.analysisFailures.Inc()
}

// RecordAnalysisLatency records end-to-end analysis latency in milliseconds.
func RecordAnalysisLatency(latencyMs float64) {
	globalManager.analysisLatency.Observe(latencyMs)
}

// ObserveOverallScore records an overall score observation.
func ObserveOverallScore(score int) {
	globalManager.overallScore.Observe(float64(score))
}

// RecordProficiencyLevel increments the counter for a proficiency level.
func RecordProficiencyLevel(level string) {
	globalManager.proficiencyLevels.WithLabelValues(level).Inc()
}

// ObserveDimensionScore records a per-dimension score observation.
func ObserveDimensionScore(dimension string, score int) {
	globalManager.dimensionScores.WithLabelValues(dimension).Observe(float64(score))
}

// RecordAnalyzerPanic increments the recovered panic counter for a dimension.
func RecordAnalyzerPanic(dimension string) {
	globalManager.analyzerPanics.WithLabelValues(dimension).Inc()
}

// RecordValidationFailure increments the rejected request counter for a rule.
func RecordValidationFailure(rule string) {
	globalManager.validationFailures.WithLabelValues(rule).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Outcome Feed Metrics Functions.

// UpdateFeedSize sets the current outcome feed size.
func UpdateFeedSize(size int) {
	globalManager.feedSize.Set(float64(size))
}

// UpdateFeedCapacity sets the maximum outcome feed capacity.
func UpdateFeedCapacity(capacity int) {
	globalManager.feedCapacity.Set(float64(capacity))
}

// UpdateFeedUtilization sets the outcome feed utilization ratio.
func UpdateFeedUtilization(utilization float64) {
	globalManager.feedUtilization.Set(utilization)
}

// RecordFeedEnqueue increments the enqueue counter.
func RecordFeedEnqueue() {
	globalManager.feedEnqueues.Inc()
}

// RecordFeedDequeue increments the dequeue counter.
func RecordFeedDequeue() {
	globalManager.feedDequeues.Inc()
}

// RecordFeedDrop increments the dropped outcome counter.
func RecordFeedDrop() {
	globalManager.feedDrops.Inc()
}

// Recorder Metrics Functions.

// UpdateRecorderActiveCount sets the number of active recorders.
func UpdateRecorderActiveCount(count int) {
	globalManager.recorderActive.Set(float64(count))
}

// RecordRecorderLatency records outcome recording latency.
func RecordRecorderLatency(latencyMs float64) {
	globalManager.recorderLatency.Observe(latencyMs)
}

// Usage Tally Metrics Functions.

// UpdateTallyRecorded sets the number of analyses recorded in the tally.
func UpdateTallyRecorded(count int64) {
	globalManager.tallyRecorded.Set(float64(count))
}

// UpdateTallyAverageScore sets the running average overall score.
func UpdateTallyAverageScore(avg float64) {
	globalManager.tallyAverageScore.Set(avg)
}

// Enhanced Error Metrics Functions.

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// UpdateServiceUptime sets the seconds elapsed since service start.
func UpdateServiceUptime(seconds float64) {
	globalManager.serviceUptime.Set(seconds)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
