package deriv

import "slices"

// Marked reports whether mark occurs at a leading, zero-width position of
// id, that is, whether it is reachable without consuming input.
//
// Marks are structural facts: Not does not invert them and And reports a
// mark present on either side.
func (s *Store) Marked(id NodeID, mark MarkID) bool {
	n := s.at("Marked", id)
	switch n.kind {
	case KindMark:
		return MarkID(n.a) == mark
	case KindStar, KindNot:
		return s.Marked(NodeID(n.a), mark)
	case KindSeq:
		head, tail := NodeID(n.a), NodeID(n.b)
		return s.Marked(head, mark) || (s.nodes[head].nullable && s.Marked(tail, mark))
	case KindOr, KindAnd:
		return s.Marked(NodeID(n.a), mark) || s.Marked(NodeID(n.b), mark)
	default:
		return false
	}
}

// Marks returns every mark active in id, in ascending MarkID order.
// It agrees with Marked for each mark but walks the node graph once.
func (s *Store) Marks(id NodeID) []MarkID {
	if len(s.marks) == 0 {
		s.at("Marks", id)
		return nil
	}

	var out []MarkID
	seen := make(map[NodeID]struct{})
	var walk func(NodeID)
	walk = func(id NodeID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}

		n := s.at("Marks", id)
		switch n.kind {
		case KindMark:
			m := MarkID(n.a)
			if !slices.Contains(out, m) {
				out = append(out, m)
			}
		case KindStar, KindNot:
			walk(NodeID(n.a))
		case KindSeq:
			walk(NodeID(n.a))
			if s.nodes[n.a].nullable {
				walk(NodeID(n.b))
			}
		case KindOr, KindAnd:
			walk(NodeID(n.a))
			walk(NodeID(n.b))
		}
	}
	walk(id)

	slices.Sort(out)
	return out
}
