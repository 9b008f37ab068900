package safe

import "reflect"

// Panic aborts with a diagnostic message. It signals a contract violation by
// the caller, not a recoverable runtime condition, and must not be caught.
func Panic(msg string) {
	panic(msg)
}

// Todo aborts marking a code path that is not implemented yet.
func Todo(msg string) {
	if msg == "" {
		msg = "not implemented"
	}
	Panic("TODO: " + msg)
}

// Unreachable aborts when control reaches a branch assumed impossible.
func Unreachable(msg string) {
	if msg == "" {
		msg = "entered unreachable code"
	}
	Panic("UNREACHABLE: " + msg)
}

// IsNil reports whether i is nil, including a typed nil pointer boxed in an
// interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors flattens err into its joined parts. A nil error yields an empty
// slice; an error without Unwrap() []error yields itself alone.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
