// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (generated content, SEO scores, users)
//   - Database query metrics
//   - Application performance metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "copycraft/internal/observability/metrics"
//
//	func saveGenerated(contentType, language string, score int) {
//	    // ... persist the record ...
//
//	    metrics.RecordContentGenerated(contentType, language)
//	    metrics.ObserveSEOScore(score)
//	}
package metrics
