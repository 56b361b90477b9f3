package streams

import (
	"flocking-report/internal/shared/metrics"
)

var (
	streamSendRequest = "send_request"

	// metricSendRequestPublishedTotal counts send requests by whether the queue took them.
	metricSendRequestPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "send_request_published_total",
		},
		[]string{"stream_id", "result"},
	)

	metricSendRequestConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "send_request_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
