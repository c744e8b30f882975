package result

import (
	apperrors "api-server/app/utils/errors"
)

// Result carries either a success value or a classified application error.
// Exactly one side is populated. Intermediate failures are returned to the
// caller as-is; the error is classified once, at its point of origin, and
// never rewrapped on the way up.
type Result[T any] struct {
	value T
	err   *apperrors.AppError
}

// Success wraps a value in a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps a classified error in a failed Result. A nil error is a
// programming bug, not a domain failure, so it panics.
func Failure[T any](err *apperrors.AppError) Result[T] {
	if err == nil {
		panic("result: Failure called with nil error")
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether the Result holds an error.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the success value. On a failed Result it returns the zero
// value; callers check IsSuccess first.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error of a failed Result, or nil on success.
func (r Result[T]) Err() *apperrors.AppError {
	return r.err
}

// Unwrap returns both sides at once for callers that prefer the
// conventional (value, err) shape.
func (r Result[T]) Unwrap() (T, *apperrors.AppError) {
	return r.value, r.err
}
