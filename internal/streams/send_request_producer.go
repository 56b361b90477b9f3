package streams

import (
	"context"

	"flocking-report/internal/events"
)

// SendRequestProducer publishes send requests to the partitioned queue.
//
// Requests are partitioned by report window. Each partition has a single
// worker, so two requests for the same window are sent one after the other
// and their archive entries never interleave, while different windows are
// sent in parallel.
//
//go:generate mockgen -source=send_request_producer.go -destination=./mocks/send_request_producer_mock.go -package=mocks
type SendRequestProducer interface {
	Produce(ctx context.Context, event events.SendRequestedEvent) error
}

type sendRequestProducer struct {
	queue *PartitionedQueue[events.SendRequestedEvent]
}

func NewSendRequestProducer(queue *PartitionedQueue[events.SendRequestedEvent]) SendRequestProducer {
	return &sendRequestProducer{queue: queue}
}

func (producer *sendRequestProducer) Produce(ctx context.Context, event events.SendRequestedEvent) error {
	if err := producer.queue.TryPublish(ctx, event.PartitionKey(), event); err != nil {
		metricSendRequestPublishedTotal.WithLabelValues(streamSendRequest, "rejected").Inc()
		return err
	}
	metricSendRequestPublishedTotal.WithLabelValues(streamSendRequest, "accepted").Inc()
	return nil
}
