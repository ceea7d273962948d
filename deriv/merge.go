package deriv

// Canonical merge for the commutative operators.
//
// An Or (respectively And) value is a right-leaning chain
//
//	Or(a1, Or(a2, ... Or(an-1, an)))
//
// whose atoms (operands that are not themselves Or nodes) are strictly
// increasing by NodeID. Merging two chains is the merge step of merge sort:
// take the smaller leading atom, recurse on the rest, and emit equal atoms
// once. Every intermediate chain goes through getOrCreate, so suffixes are
// shared between merges and any grouping or ordering of the same atoms ends
// at the same NodeID.

// merge combines two canonical operands of kind (KindOr or KindAnd).
func (s *Store) merge(site string, kind Kind, h, t NodeID) NodeID {
	hChain := s.nodes[h].kind == kind
	tChain := s.nodes[t].kind == kind

	switch {
	case hChain && tChain:
		return s.mergePair(site, kind, h, t)
	case hChain:
		return s.mergeSingle(site, kind, t, h)
	case tChain:
		return s.mergeSingle(site, kind, h, t)
	default:
		return s.mergeAtoms(site, kind, h, t)
	}
}

// mergeAtoms orders two atoms.
func (s *Store) mergeAtoms(site string, kind Kind, x, y NodeID) NodeID {
	switch {
	case x < y:
		return s.getOrCreate(site, kind, uint32(x), uint32(y))
	case y < x:
		return s.getOrCreate(site, kind, uint32(y), uint32(x))
	default:
		return x
	}
}

// mergeSingle inserts atom x into chain c.
func (s *Store) mergeSingle(site string, kind Kind, x, c NodeID) NodeID {
	head, rest := NodeID(s.nodes[c].a), NodeID(s.nodes[c].b)
	switch {
	case x < head:
		return s.getOrCreate(site, kind, uint32(x), uint32(c))
	case head < x:
		return s.getOrCreate(site, kind, uint32(head), uint32(s.merge(site, kind, x, rest)))
	default:
		return c
	}
}

// mergePair merges two chains.
func (s *Store) mergePair(site string, kind Kind, c, d NodeID) NodeID {
	ch, cr := NodeID(s.nodes[c].a), NodeID(s.nodes[c].b)
	dh, dr := NodeID(s.nodes[d].a), NodeID(s.nodes[d].b)
	switch {
	case ch < dh:
		return s.getOrCreate(site, kind, uint32(ch), uint32(s.merge(site, kind, cr, d)))
	case dh < ch:
		return s.getOrCreate(site, kind, uint32(dh), uint32(s.merge(site, kind, c, dr)))
	default:
		return s.getOrCreate(site, kind, uint32(ch), uint32(s.merge(site, kind, cr, dr)))
	}
}

// appendSeq concatenates h and t, keeping Seq chains right-associated so
// that the head of a Seq is never itself a Seq.
func (s *Store) appendSeq(h, t NodeID) NodeID {
	if s.nodes[h].kind != KindSeq {
		return s.getOrCreate("Seq", KindSeq, uint32(h), uint32(t))
	}
	head, rest := NodeID(s.nodes[h].a), NodeID(s.nodes[h].b)
	return s.getOrCreate("Seq", KindSeq, uint32(head), uint32(s.appendSeq(rest, t)))
}
