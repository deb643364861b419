package ringbuffer

// Iter is a random-access cursor over the logical sequence of a
// RingBuffer. It keeps the owning buffer, a logical index and the
// physical slot derived from it. Every move clamps the logical index to
// [0, size] and re-derives the slot, so a cursor can never step outside
// the buffer's current window: advancing past End or retreating past
// Begin is a no-op. A cursor held across a mutation may see a stale slot
// until its next move; it must not outlive the buffer.
//
// Equality compares physical slots, ordering compares logical indexes,
// Diff is the physical slot distance (meaningful only within one backing
// array generation).
type Iter[T any] struct {
	rb   *RingBuffer[T]
	pos  int
	slot int
}

func (rb *RingBuffer[T]) Begin() Iter[T] {
	return rb.iterAt(0)
}

func (rb *RingBuffer[T]) End() Iter[T] {
	return rb.iterAt(rb.size)
}

func (rb *RingBuffer[T]) iterAt(pos int) Iter[T] {
	it := Iter[T]{rb: rb}
	it.seek(pos)
	return it
}

func (it *Iter[T]) seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > it.rb.size {
		pos = it.rb.size
	}
	it.pos = pos
	it.slot = it.rb.physical(pos)
}

// Pos reports the logical index, in [0, size].
func (it Iter[T]) Pos() int {
	return it.pos
}

// Value reads the element under the cursor. Like At, the read is
// unchecked: at End it yields whatever the spacer slot holds.
func (it Iter[T]) Value() T {
	return it.rb.buffer[it.slot]
}

// Pointer exposes the element's slot for in-place mutation.
func (it Iter[T]) Pointer() *T {
	return &it.rb.buffer[it.slot]
}

func (it Iter[T]) Set(item T) {
	it.rb.buffer[it.slot] = item
}

// AtOffset reads the element n positions away without moving the cursor.
func (it Iter[T]) AtOffset(n int) T {
	return it.rb.At(it.pos + n)
}

func (it *Iter[T]) Next() {
	it.seek(it.pos + 1)
}

func (it *Iter[T]) Prev() {
	it.seek(it.pos - 1)
}

func (it Iter[T]) Add(n int) Iter[T] {
	return it.rb.iterAt(it.pos + n)
}

func (it Iter[T]) Sub(n int) Iter[T] {
	return it.rb.iterAt(it.pos - n)
}

func (it *Iter[T]) AddAssign(n int) {
	it.seek(it.pos + n)
}

func (it *Iter[T]) SubAssign(n int) {
	it.seek(it.pos - n)
}

func (it Iter[T]) Equal(other Iter[T]) bool {
	return it.slot == other.slot
}

func (it Iter[T]) Less(other Iter[T]) bool {
	return it.pos < other.pos
}

func (it Iter[T]) LessEq(other Iter[T]) bool {
	return it.pos <= other.pos
}

func (it Iter[T]) Greater(other Iter[T]) bool {
	return it.pos > other.pos
}

func (it Iter[T]) GreaterEq(other Iter[T]) bool {
	return it.pos >= other.pos
}

// Diff is the physical slot distance between two cursors.
func (it Iter[T]) Diff(other Iter[T]) int {
	return it.slot - other.slot
}

// Const converts the cursor to its read-only counterpart.
func (it Iter[T]) Const() ConstIter[T] {
	return ConstIter[T]{rb: it.rb, pos: it.pos, slot: it.slot}
}

// ConstIter is the read-only counterpart of Iter, with the same clamping
// and comparison rules and no way to mutate the element under the cursor.
type ConstIter[T any] struct {
	rb   *RingBuffer[T]
	pos  int
	slot int
}

func (rb *RingBuffer[T]) ConstBegin() ConstIter[T] {
	return rb.constIterAt(0)
}

func (rb *RingBuffer[T]) ConstEnd() ConstIter[T] {
	return rb.constIterAt(rb.size)
}

func (rb *RingBuffer[T]) constIterAt(pos int) ConstIter[T] {
	it := ConstIter[T]{rb: rb}
	it.seek(pos)
	return it
}

func (it *ConstIter[T]) seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > it.rb.size {
		pos = it.rb.size
	}
	it.pos = pos
	it.slot = it.rb.physical(pos)
}

func (it ConstIter[T]) Pos() int {
	return it.pos
}

func (it ConstIter[T]) Value() T {
	return it.rb.buffer[it.slot]
}

func (it ConstIter[T]) AtOffset(n int) T {
	return it.rb.At(it.pos + n)
}

func (it *ConstIter[T]) Next() {
	it.seek(it.pos + 1)
}

func (it *ConstIter[T]) Prev() {
	it.seek(it.pos - 1)
}

func (it ConstIter[T]) Add(n int) ConstIter[T] {
	return it.rb.constIterAt(it.pos + n)
}

func (it ConstIter[T]) Sub(n int) ConstIter[T] {
	return it.rb.constIterAt(it.pos - n)
}

func (it *ConstIter[T]) AddAssign(n int) {
	it.seek(it.pos + n)
}

func (it *ConstIter[T]) SubAssign(n int) {
	it.seek(it.pos - n)
}

func (it ConstIter[T]) Equal(other ConstIter[T]) bool {
	return it.slot == other.slot
}

func (it ConstIter[T]) Less(other ConstIter[T]) bool {
	return it.pos < other.pos
}

func (it ConstIter[T]) LessEq(other ConstIter[T]) bool {
	return it.pos <= other.pos
}

func (it ConstIter[T]) Greater(other ConstIter[T]) bool {
	return it.pos > other.pos
}

func (it ConstIter[T]) GreaterEq(other ConstIter[T]) bool {
	return it.pos >= other.pos
}

func (it ConstIter[T]) Diff(other ConstIter[T]) int {
	return it.slot - other.slot
}
