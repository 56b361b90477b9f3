package streams

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
)

// ErrQueueFull is returned by TryPublish when the target partition has no room.
var ErrQueueFull = errors.New("queue partition is full")

// PartitionedQueue fans messages out to a fixed set of buffered lanes.
// Messages with the same partition key always land in the same lane.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

func newPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

const (
	defaultNumPartitions = 4
	defaultBuffer        = 64
)

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return newPartitionedQueue[T](defaultNumPartitions, defaultBuffer)
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// TryPublish enqueues msg without blocking.
func (queue *PartitionedQueue[T]) TryPublish(ctx context.Context, partitionKey string, msg T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case queue.partitions[partitionIndex(partitionKey, len(queue.partitions))] <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
