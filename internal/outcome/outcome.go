// Package outcome provides the two-state result container threaded through
// every stage of the build pipeline.
//
// An Outcome is either a Success carrying a value or a Failure carrying a
// human-readable message. Once a Failure exists it is returned unchanged by
// every combinator, so the functions passed to Map and Chain are never invoked
// after the first failing stage.
//
// Go methods cannot introduce type parameters, so the combinators that change
// the value type (Map, Chain, Fold) are package-level functions:
//
//	res := outcome.Chain(validate(path), func(p string) outcome.Outcome[string] {
//		return materialize(p, outDir)
//	})
//	code := outcome.Fold(res,
//		func(msg string) int { fmt.Fprintln(os.Stderr, msg); return 1 },
//		func(path string) int { fmt.Println(path); return 0 },
//	)
package outcome

import (
	"errors"
	"fmt"
)

// Outcome holds either a success value or a failure message. The zero value
// is a Failure with an empty message.
type Outcome[T any] struct {
	value T
	err   error
	ok    bool
}

// Success wraps v in a successful Outcome.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true}
}

// Failure creates a failed Outcome with the given message.
func Failure[T any](msg string) Outcome[T] {
	return Outcome[T]{err: errors.New(msg)}
}

// FromError creates a failed Outcome whose message is err.Error(). The error
// is retained so callers can still inspect it with errors.Is and errors.As.
func FromError[T any](err error) Outcome[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Outcome[T]{err: err}
}

// IsSuccess reports whether the Outcome holds a value.
func (o Outcome[T]) IsSuccess() bool {
	return o.ok
}

// ToOptional returns the success value and true, or the zero value and false.
func (o Outcome[T]) ToOptional() (T, bool) {
	if !o.ok {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Message returns the failure message, or "" for a Success.
func (o Outcome[T]) Message() string {
	if o.ok {
		return ""
	}
	if o.err == nil {
		return ""
	}
	return o.err.Error()
}

// Err returns the failure as an error, or nil for a Success.
func (o Outcome[T]) Err() error {
	if o.ok {
		return nil
	}
	if o.err == nil {
		return errors.New("")
	}
	return o.err
}

// String implements fmt.Stringer.
func (o Outcome[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%s)", o.Message())
}

// Map applies f to the value of a Success. A panic raised by f is recovered
// and turned into a Failure. A Failure is passed through and f is not called.
func Map[T, U any](o Outcome[T], f func(T) U) (res Outcome[U]) {
	if !o.ok {
		return Outcome[U]{err: o.err}
	}

	defer func() {
		if r := recover(); r != nil {
			res = Failure[U](fmt.Sprintf("map: %s", panicDetail(r)))
		}
	}()

	return Success(f(o.value))
}

// Chain invokes f with the value of a Success and returns its Outcome. A
// panic raised by f is recovered and turned into a Failure. A Failure is
// passed through and f is not called.
func Chain[T, U any](o Outcome[T], f func(T) Outcome[U]) (res Outcome[U]) {
	if !o.ok {
		return Outcome[U]{err: o.err}
	}

	defer func() {
		if r := recover(); r != nil {
			res = Failure[U](fmt.Sprintf("chain: %s", panicDetail(r)))
		}
	}()

	return f(o.value)
}

// Fold unwraps the Outcome by running exactly one of the two branches.
func Fold[T, R any](o Outcome[T], onFailure func(string) R, onSuccess func(T) R) R {
	if o.ok {
		return onSuccess(o.value)
	}
	return onFailure(o.Message())
}

func panicDetail(r any) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
