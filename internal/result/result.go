// Package result holds the success/failure containers shared by every grammar:
// Result for the parse direction and GenerateResult for the generate direction.
package result

import (
	"errors"
	"fmt"
)

// ErrUnwrap is wrapped by the panic value raised when Unwrap meets an Err.
var ErrUnwrap = errors.New("unwrap called on error result")

// Result is either Ok(value) or Err(error). The discriminant is authoritative:
// a zero Result is an Err with a nil error and must not be used.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok wraps a successful value
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err wraps a failure
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{err: err}
}

// Errorf builds an Err from a formatted message
func Errorf[T any](format string, args ...any) Result[T] {
	return Err[T](fmt.Errorf(format, args...))
}

// From converts an idiomatic (value, error) pair into a Result
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOK reports whether the result carries a value
func (r Result[T]) IsOK() bool { return r.ok }

// Value returns the carried value, or the zero value for an Err
func (r Result[T]) Value() T { return r.value }

// Err returns the carried error, or nil for an Ok
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

// Get returns the result as an idiomatic (value, error) pair
func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies fn to an Ok value. An Err is passed through without calling fn.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// AndThen chains a fallible step. An Err is passed through without calling fn.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// Unwrap returns the value or panics with the error message.
// Use sparingly: only where success has already been established.
func Unwrap[T any](r Result[T]) T {
	if !r.ok {
		panic(fmt.Errorf("%w: %s", ErrUnwrap, r.err.Error()))
	}
	return r.value
}

// UnwrapOr returns the value, or def for an Err
func UnwrapOr[T any](r Result[T], def T) T {
	if !r.ok {
		return def
	}
	return r.value
}
