package searchers

import (
	"flocking-report/internal/shared/metrics"
)

var (
	metricSearchDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSearch,
			Name:      "aggregation_duration_seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{metrics.FieldErrorCode},
	)
)
