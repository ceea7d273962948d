// Package deriv implements hash-consed regular expression values and their
// Brzozowski derivatives.
//
// Every regex value is a node owned by a Store. Nodes are built only through
// the Store's smart constructors (Lit, Mark, Star, Not, Seq, Or, And), which
// apply algebraic simplification and canonical ordering before allocating.
// As a result two expressions with the same canonical shape are always the
// same NodeID, and comparing regex values is an integer comparison.
//
// The derivative of a node with respect to a byte is again a node of the same
// Store. Because the set of canonical nodes reachable by repeated derivation
// is finite, exploring the derivative relation yields a DFA (see package dfa).
package deriv

import "fmt"

// NodeID is a handle to a node in a Store.
// Handles are allocation indices, so they also provide the total order used
// to canonicalize Or and And chains.
type NodeID uint32

// MarkID identifies a capture point ("mark") by name within a Store.
type MarkID uint32

// Fixed node handles
const (
	// InvalidNode is never a valid node. It doubles as the "unknown" entry of
	// a derivative cache.
	InvalidNode NodeID = 0

	// EmptyNode matches only the empty string
	EmptyNode NodeID = 1

	// AllNode matches every string
	AllNode NodeID = 2

	// NoneNode matches nothing
	NoneNode NodeID = 3
)

// AlphabetSize is the number of input symbols (bytes).
const AlphabetSize = 256

// Kind is the node variant.
type Kind uint8

const (
	// KindInvalid is the zero Kind, used only by InvalidNode
	KindInvalid Kind = iota
	KindEmpty
	KindAll
	KindNone
	KindLiteral
	KindMark
	KindStar
	KindNot
	KindSeq
	KindOr
	KindAnd
)

// String returns the constructor name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindEmpty:
		return "Empty"
	case KindAll:
		return "All"
	case KindNone:
		return "None"
	case KindLiteral:
		return "Lit"
	case KindMark:
		return "Mark"
	case KindStar:
		return "Star"
	case KindNot:
		return "Not"
	case KindSeq:
		return "Seq"
	case KindOr:
		return "Or"
	case KindAnd:
		return "And"
	default:
		return fmt.Sprintf("UnknownKind(%d)", k)
	}
}

// node is an arena entry.
//
// Payload by kind:
//   - Literal: a = lo, b = len (symbols [lo, lo+len))
//   - Mark: a = MarkID
//   - Star, Not: a = child
//   - Seq, Or, And: a = head, b = tail
type node struct {
	kind     Kind
	nullable bool
	a, b     uint32

	// next caches derivatives by symbol; nil until the first derivation.
	next *[AlphabetSize]NodeID

	// Exploration state: state is the 1-based label (0 = unlabeled) and done
	// gates the emission pass. Both are written once per Store.
	state uint32
	done  bool
}

// key is the structural identity of a node used by the hash-consing index.
type key struct {
	kind Kind
	a, b uint32
}
