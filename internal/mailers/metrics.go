package mailers

import (
	"flocking-report/internal/shared/metrics"
)

var (
	metricEmailSentTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "email_sent_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
