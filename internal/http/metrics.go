package http

import (
	"flocking-report/internal/shared/metrics"
)

var (
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
			Help:      "HTTP requests served, by route pattern and outcome.",
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency. Report routes include the Elasticsearch round trip.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode},
	)

	// Rows exclude the grand-total row.
	metricHTTPReportRows = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "report_rows",
			Help:      "Data rows returned per successful report response.",
			Buckets:   metrics.ExponentialBuckets(1, 4, 8),
		},
		[]string{"path"},
	)
)
