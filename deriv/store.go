package deriv

import (
	"github.com/coregx/dfagen/internal/conv"
)

// Store owns every node of one compilation.
//
// The Store guarantees that at most one node exists per (kind, operands)
// tuple, so NodeID equality is structural equality. It also owns the mark
// name table. A Store is not safe for concurrent use; independent
// compilations use independent Stores.
type Store struct {
	nodes []node
	index map[key]NodeID

	marks     []string
	markIndex map[string]MarkID

	maxNodes int
	maxMarks int

	// explored is set once any node receives a state label
	explored bool
}

// NewStore creates an empty store holding only the Empty, All and None
// singletons.
func NewStore(cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		nodes:     make([]node, 0, 64),
		index:     make(map[key]NodeID, 64),
		markIndex: make(map[string]MarkID),
		maxNodes:  cfg.MaxNodes,
		maxMarks:  cfg.MaxMarks,
	}

	// Slot 0 is InvalidNode; the singletons take the next three slots and are
	// never looked up through the index.
	s.nodes = append(s.nodes,
		node{kind: KindInvalid},
		node{kind: KindEmpty, nullable: true},
		node{kind: KindAll, nullable: true},
		node{kind: KindNone, nullable: false},
	)
	return s, nil
}

// MustNewStore is like NewStore but panics on an invalid config.
func MustNewStore(cfg Config) *Store {
	s, err := NewStore(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Guard runs fn and converts a store panic (capacity exhaustion or an
// invalid handle) into a returned error. Other panics propagate.
func (s *Store) Guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

// getOrCreate returns the node with the given shape, allocating it when it
// does not exist yet. site names the constructor for diagnostics.
func (s *Store) getOrCreate(site string, kind Kind, a, b uint32) NodeID {
	k := key{kind: kind, a: a, b: b}
	if id, ok := s.index[k]; ok {
		return id
	}

	if s.Len() >= s.maxNodes {
		panic(capacityExceeded(site, "nodes", s.maxNodes))
	}

	n := node{kind: kind, a: a, b: b}
	switch kind {
	case KindLiteral:
		n.nullable = false
	case KindMark, KindStar:
		n.nullable = true
	case KindNot:
		n.nullable = !s.nodes[a].nullable
	case KindSeq, KindAnd:
		n.nullable = s.nodes[a].nullable && s.nodes[b].nullable
	case KindOr:
		n.nullable = s.nodes[a].nullable || s.nodes[b].nullable
	default:
		panic(invalidNode(site, InvalidNode))
	}

	id := NodeID(conv.IntToUint32(len(s.nodes)))
	s.nodes = append(s.nodes, n)
	s.index[k] = id
	return id
}

// at returns the arena entry for id, panicking with InvalidNodeRef for the
// sentinel or a handle this store never issued.
func (s *Store) at(site string, id NodeID) *node {
	if id == InvalidNode || int(id) >= len(s.nodes) {
		panic(invalidNode(site, id))
	}
	return &s.nodes[id]
}

// Len returns the number of allocated nodes, singletons included.
func (s *Store) Len() int {
	return len(s.nodes) - 1
}

// Valid reports whether id refers to a node of this store.
func (s *Store) Valid(id NodeID) bool {
	return id != InvalidNode && int(id) < len(s.nodes)
}

// Kind returns the variant of id.
func (s *Store) Kind(id NodeID) Kind {
	return s.at("Kind", id).kind
}

// Nullable reports whether id matches the empty string.
func (s *Store) Nullable(id NodeID) bool {
	return s.at("Nullable", id).nullable
}

// Children returns the operands of Star, Not, Seq, Or and And nodes. For
// unary nodes tail is InvalidNode; for leaves both are InvalidNode.
func (s *Store) Children(id NodeID) (head, tail NodeID) {
	n := s.at("Children", id)
	switch n.kind {
	case KindStar, KindNot:
		return NodeID(n.a), InvalidNode
	case KindSeq, KindOr, KindAnd:
		return NodeID(n.a), NodeID(n.b)
	default:
		return InvalidNode, InvalidNode
	}
}

// Literal returns the symbol range [lo, lo+length) of a Literal node.
// ok is false for other kinds.
func (s *Store) Literal(id NodeID) (lo, length int, ok bool) {
	n := s.at("Literal", id)
	if n.kind != KindLiteral {
		return 0, 0, false
	}
	return int(n.a), int(n.b), true
}

// MarkOf returns the capture id of a Mark node. ok is false for other kinds.
func (s *Store) MarkOf(id NodeID) (MarkID, bool) {
	n := s.at("MarkOf", id)
	if n.kind != KindMark {
		return 0, false
	}
	return MarkID(n.a), true
}

// MarkCount returns the number of distinct mark names.
func (s *Store) MarkCount() int {
	return len(s.marks)
}

// MarkName returns the name registered for id. An id this store never
// issued panics with an InvalidNodeRef *Error.
func (s *Store) MarkName(id MarkID) string {
	if int(id) >= len(s.marks) {
		panic(invalidMark("MarkName", id))
	}
	return s.marks[id]
}

// MarkNames returns the mark table indexed by MarkID.
func (s *Store) MarkNames() []string {
	out := make([]string, len(s.marks))
	copy(out, s.marks)
	return out
}

// LookupMark returns the id of a previously registered mark name.
func (s *Store) LookupMark(name string) (MarkID, bool) {
	id, ok := s.markIndex[name]
	return id, ok
}

// internMark returns the id for name, registering it on first use.
func (s *Store) internMark(name string) MarkID {
	if id, ok := s.markIndex[name]; ok {
		return id
	}
	if len(s.marks) >= s.maxMarks {
		panic(capacityExceeded("Mark", "mark names", s.maxMarks))
	}
	id := MarkID(conv.IntToUint32(len(s.marks)))
	s.marks = append(s.marks, name)
	s.markIndex[name] = id
	return id
}
