package deque

import (
	"github.com/flowkit/corekit/pkg/config"
	"github.com/flowkit/corekit/utils/list"
	"github.com/flowkit/corekit/utils/ringbuffer"
)

// BlockAllocator recycles fixed-size blocks through a ring buffer, so a
// deque that oscillates around a block boundary does not hit the Go
// allocator on every crossing. Once the cache is full, freed blocks are
// simply dropped.
type BlockAllocator[T any] struct {
	blockLen int
	cache    *ringbuffer.RingBuffer[[]T]
}

func NewBlockAllocator[T any](blockLen int, maxBlocks int) *BlockAllocator[T] {
	return &BlockAllocator[T]{
		blockLen: blockLen,
		cache:    ringbuffer.NewRingBuffer[[]T](maxBlocks),
	}
}

func (a *BlockAllocator[T]) NewBlock() []T {
	if b, ok := a.cache.PopFront(); ok {
		return b
	}
	return make([]T, a.blockLen)
}

func (a *BlockAllocator[T]) FreeBlock(block []T) {
	if len(block) != a.blockLen {
		panic("block length mismatch")
	}
	var zero T
	for i := range block {
		block[i] = zero
	}
	a.cache.PushBack(block)
}

// A deque implemented by a doubly linked list of fixed-size blocks.
// front and back index the first and last occupied value; back is -1
// when the last block is empty.
type Deque[T any] struct {
	blockWidth int
	maxLen     int

	allocator *BlockAllocator[T]
	blocks    *list.List[[]T]
	length    int

	front int
	back  int
}

func NewDequeDefault[T any]() *Deque[T] {
	return NewDeque[T](config.DefaultBlockWidth, 0)
}

// blockWidth is the size of each block. maxLen bounds the deque length;
// beyond it the element at the far end is dropped. Zero means no limit.
func NewDeque[T any](blockWidth int, maxLen int) *Deque[T] {
	if blockWidth < 2 {
		panic("blockWidth must be at least 2")
	}
	return &Deque[T]{
		blockWidth: blockWidth,
		maxLen:     maxLen,
		blocks:     list.NewList[[]T](),
		back:       -1,
	}
}

func (d *Deque[T]) SetBlockAllocator(allocator *BlockAllocator[T]) {
	d.allocator = allocator
}

func (d *Deque[T]) allocate() []T {
	if d.allocator != nil {
		return d.allocator.NewBlock()
	}
	return make([]T, d.blockWidth)
}

func (d *Deque[T]) free(block []T) {
	if d.allocator != nil {
		d.allocator.FreeBlock(block)
	}
}

func (d *Deque[T]) Length() int {
	return d.length
}

func (d *Deque[T]) resetEmpty() {
	d.blocks.Remove(d.blocks.Front())
	d.front = 0
	d.back = -1
}

func (d *Deque[T]) Front() (T, bool) {
	if d.length == 0 {
		var zero T
		return zero, false
	}
	return d.blocks.Front().Value[d.front], true
}

func (d *Deque[T]) FrontRef() (*T, bool) {
	if d.length == 0 {
		return nil, false
	}
	return &d.blocks.Front().Value[d.front], true
}

func (d *Deque[T]) Back() (T, bool) {
	if d.length == 0 {
		var zero T
		return zero, false
	}
	return d.blocks.Back().Value[d.back], true
}

func (d *Deque[T]) BackRef() (*T, bool) {
	if d.length == 0 {
		return nil, false
	}
	return &d.blocks.Back().Value[d.back], true
}

func (d *Deque[T]) PushBack(item T) {
	if d.back == -1 || d.back == d.blockWidth-1 {
		// No block yet, or the last one is full.
		d.blocks.PushBack(d.allocate())
		d.back = -1
	}

	d.back++
	d.blocks.Back().Value[d.back] = item
	d.length++

	if d.maxLen > 0 && d.length > d.maxLen {
		d.PopFront()
	}
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}

	le := d.blocks.Back()
	block := le.Value
	item := block[d.back]
	block[d.back] = zero
	d.back--
	d.length--

	if d.back == -1 {
		// The last block is drained.
		if d.length == 0 {
			d.resetEmpty()
		} else {
			d.blocks.Remove(le)
			d.free(block)
			d.back = d.blockWidth - 1
		}
	}

	return item, true
}

func (d *Deque[T]) PushFront(item T) {
	if d.front == 0 {
		// The first block has no room in front.
		d.blocks.PushFront(d.allocate())
		d.front = d.blockWidth
		if d.back == -1 {
			if d.length != 0 {
				panic("back must not be -1 on a non-empty deque")
			}
			d.back = d.blockWidth - 1
		}
	}

	d.front--
	d.blocks.Front().Value[d.front] = item
	d.length++

	if d.maxLen > 0 && d.length > d.maxLen {
		d.PopBack()
	}
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}

	le := d.blocks.Front()
	block := le.Value
	item := block[d.front]
	block[d.front] = zero
	d.front++
	d.length--

	if d.front == d.blockWidth {
		// The first block is drained.
		if d.length == 0 {
			d.resetEmpty()
		} else {
			d.blocks.Remove(le)
			d.free(block)
			d.front = 0
		}
	}

	return item, true
}

// snapshot copies the block spines (not the elements) so an iterator is
// unaffected by later push/pop on the deque.
func (d *Deque[T]) snapshot() [][]T {
	blocks := make([][]T, 0, d.blocks.Len())
	for e := d.blocks.Front(); e != nil; e = e.Next() {
		blocks = append(blocks, e.Value)
	}
	return blocks
}

type ForwardIter[T any] struct {
	blocks [][]T
	length int

	front int
	back  int
}

func (d *Deque[T]) ForwardIterator() *ForwardIter[T] {
	return &ForwardIter[T]{
		blocks: d.snapshot(),
		length: d.length,
		front:  d.front,
		back:   d.back,
	}
}

func (it *ForwardIter[T]) Next() (T, bool) {
	var zero T
	if it.length == 0 {
		return zero, false
	}

	block := it.blocks[0]
	item := block[it.front]
	it.front++
	it.length--

	if it.front == len(block) {
		it.blocks = it.blocks[1:]
		it.front = 0
	}

	return item, true
}

type BackwardIter[T any] struct {
	blocks [][]T
	length int

	front int
	back  int
}

func (d *Deque[T]) BackwardIterator() *BackwardIter[T] {
	return &BackwardIter[T]{
		blocks: d.snapshot(),
		length: d.length,
		front:  d.front,
		back:   d.back,
	}
}

func (it *BackwardIter[T]) Next() (T, bool) {
	var zero T
	if it.length == 0 {
		return zero, false
	}

	block := it.blocks[len(it.blocks)-1]
	item := block[it.back]
	it.back--
	it.length--

	if it.back == -1 {
		it.blocks = it.blocks[:len(it.blocks)-1]
		it.back = len(block) - 1
	}

	return item, true
}
