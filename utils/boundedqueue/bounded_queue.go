package boundedqueue

import (
	"sync"

	"github.com/pingcap/errors"
	"go.uber.org/atomic"

	"github.com/flowkit/corekit/pkg/apperror"
	"github.com/flowkit/corekit/pkg/config"
	"github.com/flowkit/corekit/utils/option"
	"github.com/flowkit/corekit/utils/ringbuffer"
)

// FullPolicy decides what a push does when the queue holds Cap elements.
type FullPolicy int

const (
	// PolicyReject makes Push return ErrorTypeQueueFull.
	PolicyReject FullPolicy = iota
	// PolicyDropOldest silently drops the oldest element, like the
	// underlying ring buffer.
	PolicyDropOldest
)

// PolicyFromName maps a config.QueuePolicy* value to a FullPolicy.
func PolicyFromName(name string) (FullPolicy, error) {
	switch name {
	case config.QueuePolicyReject:
		return PolicyReject, nil
	case config.QueuePolicyDropOldest:
		return PolicyDropOldest, nil
	default:
		return PolicyReject, errors.Trace(
			apperror.NewAppError(apperror.ErrorTypeInvalidConfig, "unknown queue policy: "+name))
	}
}

// BoundedQueue is a fixed-capacity FIFO over a ring buffer. The buffer
// itself is single-threaded; the queue adds the lock, so it is safe for
// concurrent use.
type BoundedQueue[T any] struct {
	mu     sync.Mutex
	buffer *ringbuffer.RingBuffer[T]
	policy FullPolicy

	dropped atomic.Int64
}

func NewBoundedQueue[T any](capacity int, policy FullPolicy) *BoundedQueue[T] {
	return &BoundedQueue[T]{
		buffer: ringbuffer.NewRingBuffer[T](capacity),
		policy: policy,
	}
}

// Push appends an item. On a full queue the behavior follows the policy:
// reject with an error, or drop the oldest element.
func (q *BoundedQueue[T]) Push(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.buffer.IsFull() {
		switch q.policy {
		case PolicyReject:
			rejectCounter.Inc()
			return errors.Trace(
				apperror.NewAppError(apperror.ErrorTypeQueueFull, "bounded queue is full"))
		case PolicyDropOldest:
			q.dropped.Inc()
			dropCounter.Inc()
		}
	}
	q.buffer.PushBack(item)
	pushCounter.Inc()
	return nil
}

// ForcePush appends regardless of the policy, dropping the oldest
// element when full.
func (q *BoundedQueue[T]) ForcePush(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.buffer.IsFull() {
		q.dropped.Inc()
		dropCounter.Inc()
	}
	q.buffer.PushBack(item)
	pushCounter.Inc()
}

// Pop removes and returns the oldest item, None on an empty queue.
func (q *BoundedQueue[T]) Pop() option.Option[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.buffer.PopFront()
	if ok {
		popCounter.Inc()
	}
	return option.FromTuple(item, ok)
}

// Peek returns the oldest item without removing it.
func (q *BoundedQueue[T]) Peek() option.Option[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return option.FromTuple(q.buffer.Front())
}

func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buffer.Size()
}

func (q *BoundedQueue[T]) Cap() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buffer.Capacity()
}

func (q *BoundedQueue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buffer.IsEmpty()
}

func (q *BoundedQueue[T]) IsFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buffer.IsFull()
}

// Dropped reports how many elements overwrites have discarded.
func (q *BoundedQueue[T]) Dropped() int64 {
	return q.dropped.Load()
}
