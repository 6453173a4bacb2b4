package domain

// Result is the outcome of a model call: either generated data or a
// classified failure. Check OK before reading Data.
type Result[T any] struct {
	data T
	err  *ModelError
}

// Success wraps generated data.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Failure wraps a failed call.
func Failure[T any](err *ModelError) Result[T] {
	if err == nil {
		err = NewModelError("", nil)
	}
	return Result[T]{err: err}
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

// Data returns the generated payload; it is the zero value for failures.
func (r Result[T]) Data() T {
	return r.data
}

// Error returns the failure message, or "" on success.
func (r Result[T]) Error() string {
	if r.err == nil {
		return ""
	}
	return r.err.Message
}

// Kind returns the failure classification. Successful results report
// ErrorKindOther.
func (r Result[T]) Kind() ErrorKind {
	if r.err == nil {
		return ErrorKindOther
	}
	return r.err.Kind
}

// Get converts the result into Go's (value, error) convention.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.data, nil
}
