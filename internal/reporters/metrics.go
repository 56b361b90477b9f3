package reporters

import (
	"flocking-report/internal/shared/metrics"
)

// metricRunsTotal counts report runs by outcome. error_code is empty for successful runs.
//
// Generate and Send both count: an HTTP request for a report is a run the same
// as a scheduled send.
var (
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "runs_total",
		},
		[]string{"mode", metrics.FieldErrorCode},
	)

	// metricRecordsTotal counts flattened records, excluding the total row.
	metricRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "records_total",
		},
		[]string{"mode"},
	)

	metricLastWallHours = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "last_wall_hours",
			Help:      "Grand total Wall Hours of the last successful report.",
		},
	)

	metricLastSuccessTimestamp = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "last_success_timestamp_seconds",
		},
	)
)

const (
	modeGenerate = "generate"
	modeSend     = "send"
)
