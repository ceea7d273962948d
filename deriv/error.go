package deriv

import "fmt"

// ErrCapacityExceeded indicates the node store or the mark table is full.
// Compilation cannot continue; the Error carries the construction site.
var ErrCapacityExceeded = &Error{
	Kind: CapacityExceeded,
	Msg:  "node store capacity exceeded",
}

// ErrInvalidNode indicates a derivative or mark query on a handle that does
// not refer to a constructed node. This is a caller bug.
var ErrInvalidNode = &Error{
	Kind: InvalidNodeRef,
	Msg:  "invalid node",
}

// ErrorKind classifies store errors
type ErrorKind uint8

const (
	// CapacityExceeded indicates MaxNodes or MaxMarks was reached
	CapacityExceeded ErrorKind = iota

	// InvalidNodeRef indicates an uninitialized or foreign node handle
	InvalidNodeRef
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case CapacityExceeded:
		return "CapacityExceeded"
	case InvalidNodeRef:
		return "InvalidNode"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is raised by the Store. Constructors and Derive panic with *Error;
// Guard converts the panic back into a returned error.
type Error struct {
	Kind ErrorKind
	Msg  string

	// Site names the constructor or query that failed ("Seq", "Derive", ...)
	Site string

	// Node is the offending handle for InvalidNodeRef errors. For an
	// invalid mark it holds the MarkID.
	Node NodeID
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Site != "" && e.Kind == InvalidNodeRef:
		return fmt.Sprintf("%s: %s %d", e.Site, e.Msg, e.Node)
	case e.Site != "":
		return fmt.Sprintf("%s: %s", e.Site, e.Msg)
	default:
		return e.Msg
	}
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func capacityExceeded(site, what string, limit int) *Error {
	return &Error{
		Kind: CapacityExceeded,
		Msg:  fmt.Sprintf("out of %s (limit %d)", what, limit),
		Site: site,
	}
}

func invalidNode(site string, id NodeID) *Error {
	return &Error{
		Kind: InvalidNodeRef,
		Msg:  "invalid node",
		Site: site,
		Node: id,
	}
}

func invalidMark(site string, id MarkID) *Error {
	return &Error{
		Kind: InvalidNodeRef,
		Msg:  "invalid mark",
		Site: site,
		Node: NodeID(id),
	}
}
