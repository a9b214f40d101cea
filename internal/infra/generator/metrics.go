package generator

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder defines the interface for recording generation metrics.
// This interface abstracts the metrics recording implementation, enabling
// mocking in unit tests and swapping metrics systems without touching the
// adapters.
type MetricsRecorder interface {
	// RecordDuration records the time taken by one upstream generation call.
	RecordDuration(provider string, duration time.Duration)

	// RecordFailure increments the failure counter for a provider.
	RecordFailure(provider string)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
type PrometheusMetrics struct {
	durationHistogram *prometheus.HistogramVec
	failureCounter    *prometheus.CounterVec
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusMetrics creates a new Prometheus-based metrics recorder.
// Uses singleton pattern to avoid duplicate metric registration in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			durationHistogram: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "content_generation_duration_seconds",
				Help:    "Time taken by one upstream generation API call",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}, []string{"provider"}),
			failureCounter: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "content_generation_failures_total",
				Help: "Total number of failed upstream generation calls",
			}, []string{"provider"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordDuration implements MetricsRecorder.RecordDuration.
func (p *PrometheusMetrics) RecordDuration(provider string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordFailure implements MetricsRecorder.RecordFailure.
func (p *PrometheusMetrics) RecordFailure(provider string) {
	p.failureCounter.WithLabelValues(provider).Inc()
}

// NoOpMetrics is a MetricsRecorder that discards all observations.
type NoOpMetrics struct{}

// RecordDuration implements MetricsRecorder.RecordDuration.
func (NoOpMetrics) RecordDuration(string, time.Duration) {}

// RecordFailure implements MetricsRecorder.RecordFailure.
func (NoOpMetrics) RecordFailure(string) {}
