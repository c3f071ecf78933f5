package todo

import "fmt"

// ValidationError reports malformed input: a bad title, a type mismatch, or
// an invalid collection element.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation that required an id which is absent from
// the collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return "todo not found: " + e.ID }

// ImportError reports a malformed interchange payload. It wraps the underlying
// parse or validation failure.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string { return "import failed: " + e.Err.Error() }

func (e *ImportError) Unwrap() error { return e.Err }
