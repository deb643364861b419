package result

import (
	"fmt"

	"github.com/pingcap/errors"
)

// Result carries either a value or an error. The zero Result is an Ok
// holding the zero value.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Errf builds an error Result with a stack attached.
func Errf[T any](format string, args ...interface{}) Result[T] {
	return Result[T]{err: errors.Errorf(format, args...)}
}

// FromTuple lifts the (value, err) convention into a Result.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) IsErr() bool {
	return r.err != nil
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the contained value and panics on an error Result.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("unwrap of an error result: %v", r.err))
	}
	return r.value
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// UnwrapErr returns the contained error, nil for an Ok Result.
func (r Result[T]) UnwrapErr() error {
	return r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the contained value; an error Result passes through.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// AndThen chains a fallible transformation.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}
