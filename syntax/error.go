package syntax

import "fmt"

// ErrMalformedInput matches every syntax error via errors.Is.
var ErrMalformedInput = &Error{Kind: MalformedInput, Msg: "malformed pattern"}

// ErrorKind classifies syntax errors
type ErrorKind uint8

const (
	// MalformedInput is the generic kind; every other kind is a refinement
	MalformedInput ErrorKind = iota

	// UnexpectedEnd indicates the pattern ended where an atom was required
	UnexpectedEnd

	// UnexpectedChar indicates a character that cannot start or continue an expression
	UnexpectedChar

	// UnmatchedParen indicates a '(' without ')' or a stray ')'
	UnmatchedParen

	// UnmatchedBracket indicates a '[' class without a closing ']'
	UnmatchedBracket

	// UnterminatedMark indicates a '`' mark name without a closing '`'
	UnterminatedMark
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case MalformedInput:
		return "MalformedInput"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case UnexpectedChar:
		return "UnexpectedChar"
	case UnmatchedParen:
		return "UnmatchedParen"
	case UnmatchedBracket:
		return "UnmatchedBracket"
	case UnterminatedMark:
		return "UnterminatedMark"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error describes a malformed pattern.
type Error struct {
	Kind    ErrorKind
	Pattern string
	Pos     int // byte offset into Pattern
	Msg     string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Pattern == "" && e.Pos == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s at position %d in %q", e.Msg, e.Pos, e.Pattern)
}

// Is reports whether target is ErrMalformedInput or an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == MalformedInput || t.Kind == e.Kind
}
