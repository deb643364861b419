package chann

import (
	"sync"

	"github.com/flowkit/corekit/utils/deque"
)

// UnlimitedChannel is a channel with an unlimited buffer, built from a
// cond variable over a block deque. It is safe for concurrent use and
// supports batched receives, which suits consumers that flush pending
// items in groups.
type UnlimitedChannel[T any] struct {
	queue *deque.Deque[T]

	mu     sync.RWMutex
	cond   *sync.Cond
	closed bool
}

func NewUnlimitedChannel[T any]() *UnlimitedChannel[T] {
	ch := &UnlimitedChannel[T]{
		queue: deque.NewDequeDefault[T](),
	}
	ch.cond = sync.NewCond(&ch.mu)
	return ch
}

// Close wakes every blocked receiver. Pending items can still be drained
// afterwards; pushing is no longer allowed.
func (c *UnlimitedChannel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.cond.Broadcast()
}

func (c *UnlimitedChannel[T]) Push(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		panic("push to a closed unlimited channel")
	}

	c.queue.PushBack(item)
	c.cond.Signal()
}

// Get blocks until an item is available or the channel is closed and
// drained. The boolean is false only in the latter case.
func (c *UnlimitedChannel[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for !c.closed && c.queue.Length() == 0 {
		c.cond.Wait()
	}
	if c.closed && c.queue.Length() == 0 {
		var zero T
		return zero, false
	}

	item, ok := c.queue.PopFront()
	if !ok {
		panic("unreachable")
	}
	return item, true
}

// GetMultiple appends up to cap(buffer)-len(buffer) items to buffer,
// blocking until at least one is available. The boolean is false once
// the channel is closed and drained.
func (c *UnlimitedChannel[T]) GetMultiple(buffer []T) ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for !c.closed && c.queue.Length() == 0 {
		c.cond.Wait()
	}
	if c.closed && c.queue.Length() == 0 {
		return buffer, false
	}

	for len(buffer) < cap(buffer) {
		item, ok := c.queue.PopFront()
		if !ok {
			break
		}
		buffer = append(buffer, item)
	}
	return buffer, true
}

func (c *UnlimitedChannel[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.queue.Length()
}
