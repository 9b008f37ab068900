package res

import (
	"errors"

	"github.com/ellrym/swiss/pkg/safe/opt"
)

// Map transforms Result[In] into Result[Out]. f is not invoked on failure;
// the error travels through ErrFrom, identity stamp included.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if r.IsOk() {
		return Ok(f(r.Value()))
	}
	return ErrFrom[In, Out](r)
}

// Then is the type-changing monadic bind. f is not invoked on failure.
func Then[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if r.IsOk() {
		return f(r.Value())
	}
	return ErrFrom[In, Out](r)
}

// Try lifts a conventional (value, error) return pair into a Result.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Validate returns Ok(v) when valid reports true, otherwise a failure
// carrying msg.
func Validate[T any](v T, valid func(T) bool, msg string) Result[T] {
	if valid(v) {
		return Ok(v)
	}
	return Err[T](errors.New(msg))
}

// Finally collapses a Result to a concrete value via handlers.
func Finally[In, Out any](r Result[In], onOk func(In) Out, onErr func(error) Out) Out {
	if r.IsOk() {
		return onOk(r.Value())
	}
	return onErr(r.Err())
}

// ToOption discards the error, keeping only presence.
func ToOption[T any](r Result[T]) opt.Option[T] {
	if r.IsOk() {
		return opt.Some(r.Value())
	}
	return opt.None[T]()
}

// FromOption turns absence into the supplied error.
func FromOption[T any](o opt.Option[T], err error) Result[T] {
	if v, ok := o.Get(); ok {
		return Ok(v)
	}
	return Err[T](err)
}
