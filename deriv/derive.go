package deriv

// Derive returns the Brzozowski derivative of id with respect to b: the node
// matching { w : b·w ∈ L(id) }.
//
// Results are memoized per node and symbol. Because every result is built
// with the simplifying constructors, it is itself canonical, which keeps the
// set of nodes reachable through Derive finite.
//
// Panics with an InvalidNodeRef error if id is not a node of s.
func (s *Store) Derive(id NodeID, b byte) NodeID {
	n := s.at("Derive", id)
	if n.next != nil && n.next[b] != InvalidNode {
		return n.next[b]
	}

	// Copy the payload: constructors below may grow the arena and move n.
	kind, x, y := n.kind, NodeID(n.a), NodeID(n.b)

	var r NodeID
	switch kind {
	case KindEmpty, KindNone, KindMark:
		r = NoneNode
	case KindAll:
		r = AllNode
	case KindLiteral:
		if uint32(b) >= uint32(x) && uint32(b) < uint32(x)+uint32(y) {
			r = EmptyNode
		} else {
			r = NoneNode
		}
	case KindStar:
		// Peel one iteration: d(x*) = d(x) x*
		r = s.Seq(s.Derive(x, b), id)
	case KindNot:
		r = s.Not(s.Derive(x, b))
	case KindSeq:
		r = s.Seq(s.Derive(x, b), y)
		if s.nodes[x].nullable {
			r = s.Or(r, s.Derive(y, b))
		}
	case KindOr:
		r = s.Or(s.Derive(x, b), s.Derive(y, b))
	case KindAnd:
		r = s.And(s.Derive(x, b), s.Derive(y, b))
	default:
		panic(invalidNode("Derive", id))
	}

	n = &s.nodes[id]
	if n.next == nil {
		n.next = new([AlphabetSize]NodeID)
	}
	n.next[b] = r
	return r
}

// DeriveString folds Derive over input, returning the residual of id after
// consuming every byte. It stops early once the residual is None.
func (s *Store) DeriveString(id NodeID, input []byte) NodeID {
	for _, b := range input {
		if id == NoneNode {
			break
		}
		id = s.Derive(id, b)
	}
	return id
}

// Matches reports whether id accepts all of input.
func (s *Store) Matches(id NodeID, input []byte) bool {
	return s.Nullable(s.DeriveString(id, input))
}
