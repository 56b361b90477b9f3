package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"flocking-report/internal/events"
	"flocking-report/internal/reporters"
	"flocking-report/internal/shared/loggers"
	"flocking-report/internal/shared/metrics"
	"flocking-report/internal/shared/svcerrors"
)

type SendRequestConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type sendRequestConsumer struct {
	queue         *PartitionedQueue[events.SendRequestedEvent]
	reportService reporters.ReportService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewSendRequestConsumer(queue *PartitionedQueue[events.SendRequestedEvent], reportService reporters.ReportService, logger loggers.Logger) SendRequestConsumer {
	return &sendRequestConsumer{
		queue:         queue,
		reportService: reportService,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start spawns one worker goroutine per partition.
func (consumer *sendRequestConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to finish their current send. Queued requests are dropped.
func (consumer *sendRequestConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *sendRequestConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.SendRequestedEvent) {
	workerLogger := consumer.logger.With().
		Str(loggers.FieldPartitionID, strconv.Itoa(partitionIndex)).
		Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(workerLogger.With().Str(loggers.FieldRequestID, event.RequestID).Logger().WithContext(ctx), event)
		}
	}
}

func (consumer *sendRequestConsumer) handle(ctx context.Context, event events.SendRequestedEvent) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("send worker panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricSendRequestConsumedTotal.WithLabelValues(streamSendRequest, svcErr.Code).Inc()
		}
	}()

	_, svcErr := consumer.reportService.Send(ctx, reporters.SendOptions{
		Window: event.Window(),
		Probes: event.Probes,
		Test:   event.Test,
		DryRun: event.DryRun,
	})
	if svcErr != nil {
		metricSendRequestConsumedTotal.WithLabelValues(streamSendRequest, svcErr.Code).Inc()
		return
	}
	metricSendRequestConsumedTotal.WithLabelValues(streamSendRequest, metrics.ValueNoError).Inc()
}
