package ringbuffer

// Insert places item before the element at logical index pos. Everything
// at [pos, size) shifts one slot toward the back; on a full buffer the
// oldest element is dropped, exactly as a push would drop it. An index at
// or past the end degenerates to PushBack.
func (rb *RingBuffer[T]) Insert(pos int, item T) {
	if pos < 0 {
		pos = 0
	}
	if pos >= rb.size {
		// pos addresses the write slot: plain append.
		rb.PushBack(item)
		return
	}

	// Shift back to front so no source slot is overwritten before it is
	// read. The element at size-1 lands in the spacer slot.
	for i := rb.size - 1; i >= pos; i-- {
		rb.buffer[rb.physical(i+1)] = rb.buffer[rb.physical(i)]
	}

	// The slot vacated for pos, computed before the cursors move.
	dest := rb.physical(pos)
	rb.advance()
	if pos == 0 {
		// The front may have rotated when a full buffer dropped its
		// oldest element; the naively precomputed slot is then the spacer.
		dest = rb.start
	}
	rb.buffer[dest] = item
}

// Erase removes the element at logical index pos and returns an iterator
// to the element now holding that position, or End when the last element
// was removed. Removing the last element is O(1); interior removal shifts
// everything after pos one slot toward the front. An out-of-window index
// is a no-op returning End.
func (rb *RingBuffer[T]) Erase(pos int) Iter[T] {
	if pos < 0 {
		pos = 0
	}
	if pos >= rb.size {
		return rb.End()
	}

	if pos == rb.size-1 {
		// Tail fast path: retreat the write cursor onto the vacated slot.
		last := rb.physical(pos)
		rb.buffer[last] = rb.zero
		rb.write = last
		rb.size--
		return rb.End()
	}

	for i := pos; i < rb.size-1; i++ {
		rb.buffer[rb.physical(i)] = rb.buffer[rb.physical(i+1)]
	}
	tail := rb.physical(rb.size - 1)
	rb.buffer[tail] = rb.zero
	rb.write = tail
	rb.size--
	return rb.iterAt(pos)
}

// EraseRange removes the logical range [first, last) and returns an
// iterator to the element after the erased range. A range touching the
// logical end is pure bookkeeping; otherwise the elements after last
// shift forward by last-first slots. A reversed range (first > last) is
// a no-op returning an iterator at last.
func (rb *RingBuffer[T]) EraseRange(first, last int) Iter[T] {
	if first > last {
		return rb.iterAt(last)
	}
	if first < 0 {
		first = 0
	}
	if last > rb.size {
		last = rb.size
	}
	if first >= rb.size || first == last {
		return rb.iterAt(last)
	}

	if last == rb.size {
		// The range runs to the logical end: drop the tail in place.
		removed := rb.size - first
		for i := first; i < rb.size; i++ {
			rb.buffer[rb.physical(i)] = rb.zero
		}
		rb.retreatWrite(removed)
		rb.size = first
		return rb.End()
	}

	shift := last - first
	for i := last; i < rb.size; i++ {
		rb.buffer[rb.physical(i-shift)] = rb.buffer[rb.physical(i)]
	}
	for i := rb.size - shift; i < rb.size; i++ {
		rb.buffer[rb.physical(i)] = rb.zero
	}
	rb.retreatWrite(shift)
	rb.size -= shift
	return rb.iterAt(first)
}

// retreatWrite moves the write cursor n slots back, crossing the wrap
// point when the cursor sits below the occupied window.
func (rb *RingBuffer[T]) retreatWrite(n int) {
	if rb.write >= n {
		rb.write -= n
	} else {
		rb.write += rb.loop + 1 - n
	}
}
