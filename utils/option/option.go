package option

import "fmt"

// Option is a value that may be absent. The zero Option is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromTuple lifts the (value, ok) convention into an Option.
func FromTuple[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value and panics on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("unwrap of a None option")
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

// Take moves the value out, leaving None behind.
func (o *Option[T]) Take() Option[T] {
	taken := *o
	*o = None[T]()
	return taken
}

// Replace stores a new value and returns the previous state.
func (o *Option[T]) Replace(value T) Option[T] {
	prev := *o
	*o = Some(value)
	return prev
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the contained value, if any.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// AndThen chains a fallible transformation.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}
