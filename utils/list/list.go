package list

// A generic doubly linked list with a sentinel root, in the shape of
// container/list but typed.

type Elem[T any] struct {
	prev, next *Elem[T]
	list       *List[T]

	Value T
}

func (e *Elem[T]) Next() *Elem[T] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

func (e *Elem[T]) Prev() *Elem[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

type List[T any] struct {
	root Elem[T]
	len  int
}

func NewList[T any]() *List[T] {
	l := &List[T]{}
	l.root.prev = &l.root
	l.root.next = &l.root
	return l
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) Front() *Elem[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *List[T]) Back() *Elem[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *List[T]) insertAfter(e *Elem[T], at *Elem[T]) *Elem[T] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

func (l *List[T]) PushFront(v T) *Elem[T] {
	return l.insertAfter(&Elem[T]{Value: v}, &l.root)
}

func (l *List[T]) PushBack(v T) *Elem[T] {
	return l.insertAfter(&Elem[T]{Value: v}, l.root.prev)
}

// Remove detaches e from the list and returns its value. Removing an
// element that is not on this list is a no-op.
func (l *List[T]) Remove(e *Elem[T]) T {
	if e.list == l {
		e.prev.next = e.next
		e.next.prev = e.prev
		e.prev = nil
		e.next = nil
		e.list = nil
		l.len--
	}
	return e.Value
}
