package ringbuffer

import (
	"math"

	"github.com/flowkit/corekit/pkg/config"
)

// RingBuffer is a contiguous circular buffer with logical indexing.
// The backing array holds capacity+1 slots; the extra slot is the spacer
// that disambiguates a full buffer from an empty one, so no separate flag
// is needed. Pushing into a full buffer silently drops the oldest element.
//
// Not safe for concurrent use. See boundedqueue for a synchronized wrapper.
type RingBuffer[T any] struct {
	buffer   []T
	capacity int

	// start is the physical slot of the logical front, write the slot the
	// next append lands in, loop the last valid slot index (== capacity).
	start, write, loop int
	size               int

	zero T
}

func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		capacity = config.DefaultInitialCapacity
	}
	return &RingBuffer[T]{
		buffer:   make([]T, capacity+1),
		capacity: capacity,
		loop:     capacity,
	}
}

func NewRingBufferDefault[T any]() *RingBuffer[T] {
	return NewRingBuffer[T](config.DefaultInitialCapacity)
}

// NewRingBufferFilled returns a buffer of the given capacity with every
// position holding a copy of fill.
func NewRingBufferFilled[T any](capacity int, fill T) *RingBuffer[T] {
	rb := NewRingBuffer[T](capacity)
	for i := 0; i < rb.capacity; i++ {
		rb.PushBack(fill)
	}
	return rb
}

// physical maps a logical index to a slot of the backing array. Indexes
// past one full turn saturate to loop instead of erroring, matching At.
func (rb *RingBuffer[T]) physical(index int) int {
	if index < 0 {
		index = 0
	}
	slot := rb.start + index
	if slot > rb.loop {
		slot -= rb.loop + 1
	}
	if slot > rb.loop {
		slot = rb.loop
	}
	return slot
}

// logical is the inverse of physical. The spacer slot (and any stale slot
// outside the occupied window) reports the end position.
func (rb *RingBuffer[T]) logical(slot int) int {
	index := slot - rb.start
	if index < 0 {
		index += rb.loop + 1
	}
	if index > rb.size {
		index = rb.size
	}
	return index
}

func (rb *RingBuffer[T]) Size() int {
	return rb.size
}

func (rb *RingBuffer[T]) Capacity() int {
	return rb.capacity
}

// MaxSize reports the largest capacity a buffer can grow to. One slot of
// the backing array is always reserved for the spacer.
func (rb *RingBuffer[T]) MaxSize() int {
	return math.MaxInt - 1
}

func (rb *RingBuffer[T]) IsEmpty() bool {
	return rb.size == 0
}

func (rb *RingBuffer[T]) IsFull() bool {
	return rb.size == rb.capacity
}

// Data exposes the raw, non-rotated backing array, spacer slot included.
// The logical order of the elements is not the slice order.
func (rb *RingBuffer[T]) Data() []T {
	return rb.buffer
}

// At reads the element at a logical index. The access is unchecked:
// out-of-range indexes saturate to the last slot instead of erroring.
func (rb *RingBuffer[T]) At(index int) T {
	return rb.buffer[rb.physical(index)]
}

// Ref returns a pointer to the element at a logical index, with the same
// saturating policy as At.
func (rb *RingBuffer[T]) Ref(index int) *T {
	return &rb.buffer[rb.physical(index)]
}

func (rb *RingBuffer[T]) Front() (T, bool) {
	if rb.size == 0 {
		return rb.zero, false
	}
	return rb.buffer[rb.start], true
}

func (rb *RingBuffer[T]) Back() (T, bool) {
	if rb.size == 0 {
		return rb.zero, false
	}
	return rb.buffer[rb.physical(rb.size-1)], true
}

func (rb *RingBuffer[T]) PushBack(item T) {
	rb.buffer[rb.write] = item
	rb.advance()
}

// advance moves the write cursor past a freshly written slot and settles
// start/size. When the buffer is full the oldest element is dropped: its
// slot is zeroed and becomes the new spacer.
func (rb *RingBuffer[T]) advance() {
	if rb.write == rb.loop {
		rb.write = 0
		if rb.start == 0 {
			// The write cursor wrapped onto slot 0 while it held the
			// front: slot 0 becomes the new spacer.
			rb.buffer[0] = rb.zero
			rb.start = 1
			return
		}
	} else {
		rb.write++
		if rb.write == rb.start {
			rb.buffer[rb.start] = rb.zero
			if rb.start == rb.loop {
				rb.start = 0
			} else {
				rb.start++
			}
			return
		}
	}
	if rb.size < rb.capacity {
		rb.size++
	}
}

// PushFront inserts at the logical front. On a full buffer the oldest
// element (the previous front) is dropped, same as any insert.
func (rb *RingBuffer[T]) PushFront(item T) {
	rb.Insert(0, item)
}

func (rb *RingBuffer[T]) PopFront() (T, bool) {
	if rb.size == 0 {
		return rb.zero, false
	}
	item := rb.buffer[rb.start]
	rb.buffer[rb.start] = rb.zero
	if rb.start == rb.loop {
		rb.start = 0
	} else {
		rb.start++
	}
	rb.size--
	return item, true
}

// PopBack reads the element right before the write cursor and removes it
// through the O(1) erase fast path.
func (rb *RingBuffer[T]) PopBack() (T, bool) {
	if rb.size == 0 {
		return rb.zero, false
	}
	item := rb.buffer[rb.physical(rb.size-1)]
	rb.Erase(rb.size - 1)
	return item, true
}

// Reserve grows the backing array to hold capacity elements. A request at
// or below the current capacity is a no-op. The logical sequence is copied
// to the head of the new array, so start becomes 0 and the write cursor
// lands right after the copied run. Slots cached by live iterators go
// stale; they are re-derived on the iterator's next move.
func (rb *RingBuffer[T]) Reserve(capacity int) {
	if capacity <= rb.capacity {
		return
	}
	grown := make([]T, capacity+1)
	for i := 0; i < rb.size; i++ {
		grown[i] = rb.buffer[rb.physical(i)]
	}
	rb.buffer = grown
	rb.start = 0
	rb.write = rb.size
	rb.loop = capacity
	rb.capacity = capacity
}

// Clear resets the cursors and zeroes the occupied slots so that anything
// the elements referenced can be collected right away.
func (rb *RingBuffer[T]) Clear() {
	for i := 0; i < rb.size; i++ {
		rb.buffer[rb.physical(i)] = rb.zero
	}
	rb.start = 0
	rb.write = 0
	rb.size = 0
}
