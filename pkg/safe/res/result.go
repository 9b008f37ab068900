package res

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ellrym/swiss/pkg/safe"
)

// Result represents success-with-value or failure-with-error as data, so
// the caller decides locally whether to unwrap, transform, or recover.
//
// Every Result is stamped with an id and UTC creation time; failures keep
// their stamp across type changes (see ErrFrom), which makes them easy to
// correlate after the fact. Compare results through accessors, not ==.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err returns a failed Result carrying err.
func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Errf is Err with fmt.Errorf formatting.
func Errf[T any](format string, args ...any) Result[T] {
	return Err[T](fmt.Errorf(format, args...))
}

// ErrFrom propagates a failure into a Result of another type, keeping the
// original error, id, and creation time.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the successful value, or the zero value when failed.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the carried error, nil when successful.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and the error as a conventional Go pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IsOk reports whether the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result is a failure.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// ID returns the identity stamp assigned at construction.
func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Unwrap returns the value. Calling Unwrap on a failed Result is a
// programmer error and aborts.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		if r.err != nil {
			safe.Panic("called Unwrap on an Err result: " + r.err.Error())
		}
		safe.Panic("called Unwrap on an Err result")
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied diagnostic.
func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		safe.Panic(msg)
	}
	return r.value
}

// UnwrapErr returns the error. Calling UnwrapErr on a successful Result is
// a programmer error and aborts.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		safe.Panic("called UnwrapErr on an Ok result")
	}
	return r.err
}

// ValueOr returns the value, or def when failed. The fallback is eager.
func (r Result[T]) ValueOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// Otherwise returns the value, or recovers from the failure by invoking f
// on the carried error to produce a substitute.
func (r Result[T]) Otherwise(f func(error) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.value
}

// Map transforms the value, keeping the type. Failures pass through
// untouched and f is not invoked.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if !r.ok {
		return r
	}
	return Ok(f(r.value))
}

// Then chains a function that may itself fail. The result of f is returned
// as-is; failures pass through untouched.
func (r Result[T]) Then(f func(T) Result[T]) Result[T] {
	if !r.ok {
		return r
	}
	return f(r.value)
}
