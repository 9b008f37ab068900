package opt

import "github.com/ellrym/swiss/pkg/safe"

// Option represents an optional value. It is either Some (holding a value)
// or None (empty), tracked by an explicit discriminant rather than a nil
// pointer. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a possibly-nil pointer into an Option over the pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the contained value. Calling Unwrap on a None option is a
// programmer error and aborts.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		safe.Panic("called Unwrap on a None option")
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied diagnostic.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		safe.Panic(msg)
	}
	return o.value
}

// ValueOr returns the value, or def when None. The fallback is eager.
func (o Option[T]) ValueOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Otherwise returns the value, or invokes f exactly once to compute a
// fallback when None. The fallback is lazy.
func (o Option[T]) Otherwise(f func() T) T {
	if !o.ok {
		return f()
	}
	return o.value
}

// Map transforms the value, keeping the type. None passes through and f is
// not invoked.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.ok {
		return o
	}
	return Some(f(o.value))
}

// Then chains a function that may itself produce None. The result of f is
// returned as-is, without double wrapping.
func (o Option[T]) Then(f func(T) Option[T]) Option[T] {
	if !o.ok {
		return o
	}
	return f(o.value)
}

// Map transforms Option[T] into Option[U]. f is not invoked on None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// Then is the type-changing monadic bind. f is not invoked on None.
func Then[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// Flatten collapses one level of Option nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if v, ok := o.Get(); ok {
		return v
	}
	return None[T]()
}
