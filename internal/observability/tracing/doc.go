// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware extracts incoming trace context, starts a server span
// per request, and echoes the trace ID back in the X-Trace-Id response header
// so clients can correlate failures with server traces.
//
// Example usage:
//
//	import "copycraft/internal/observability/tracing"
//
//	handler = tracing.Middleware(handler)
package tracing
