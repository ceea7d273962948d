package dfa

import "fmt"

// ErrAlreadyExplored indicates the store was labeled by an earlier
// exploration, from this root or any other. Labels are write-once per store,
// so each exploration needs a fresh deriv.Store.
var ErrAlreadyExplored = &Error{
	Kind:    AlreadyExplored,
	Message: "node already explored in this store",
}

// ErrorKind classifies exploration errors
type ErrorKind uint8

const (
	// AlreadyExplored indicates the store's labels are already in use
	AlreadyExplored ErrorKind = iota

	// LabelMismatch indicates the emission pass disagreed with the labeling
	// pass. It signals a broken store invariant.
	LabelMismatch
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case AlreadyExplored:
		return "AlreadyExplored"
	case LabelMismatch:
		return "LabelMismatch"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error represents an error that occurred during exploration
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
