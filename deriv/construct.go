package deriv

// Smart constructors. Each one applies the simplification identities for its
// operator before touching the store. The identities are what keeps the set
// of derivatives of a pattern finite, so none of them is optional.

// Empty returns the node matching only the empty string.
func (s *Store) Empty() NodeID { return EmptyNode }

// All returns the node matching every string.
func (s *Store) All() NodeID { return AllNode }

// None returns the node matching nothing.
func (s *Store) None() NodeID { return NoneNode }

// Lit returns the node matching one symbol in [lo, lo+length).
// Panics with an InvalidNodeRef error if the range is empty or leaves the
// alphabet.
func (s *Store) Lit(lo, length int) NodeID {
	if lo < 0 || length < 1 || lo+length > AlphabetSize {
		panic(&Error{Kind: InvalidNodeRef, Msg: "symbol range out of alphabet", Site: "Lit"})
	}
	return s.getOrCreate("Lit", KindLiteral, uint32(lo), uint32(length))
}

// Byte returns the node matching exactly b.
func (s *Store) Byte(b byte) NodeID {
	return s.Lit(int(b), 1)
}

// Range returns the node matching one symbol in [lo, hi]. The bounds may be
// given in either order.
func (s *Store) Range(lo, hi byte) NodeID {
	if lo > hi {
		lo, hi = hi, lo
	}
	return s.Lit(int(lo), int(hi)-int(lo)+1)
}

// AnyByte returns the node matching any single symbol.
func (s *Store) AnyByte() NodeID {
	return s.Lit(0, AlphabetSize)
}

// Mark returns the zero-width capture node for name. The first use of a
// name allocates its MarkID; later uses share it.
func (s *Store) Mark(name string) NodeID {
	id := s.internMark(name)
	return s.getOrCreate("Mark", KindMark, uint32(id), 0)
}

// Star returns the Kleene closure of x.
func (s *Store) Star(x NodeID) NodeID {
	n := s.at("Star", x)
	switch n.kind {
	case KindEmpty, KindNone:
		return EmptyNode
	case KindAll, KindStar:
		return x
	case KindLiteral:
		if n.a == 0 && n.b == AlphabetSize {
			return AllNode
		}
	}
	return s.getOrCreate("Star", KindStar, uint32(x), 0)
}

// Not returns the complement of x with respect to all strings.
// Not(Not(y)) is kept as written.
func (s *Store) Not(x NodeID) NodeID {
	switch s.at("Not", x).kind {
	case KindAll:
		return NoneNode
	case KindNone:
		return AllNode
	}
	return s.getOrCreate("Not", KindNot, uint32(x), 0)
}

// Seq returns the concatenation of h and t as a right-leaning chain.
func (s *Store) Seq(h, t NodeID) NodeID {
	hk, tk := s.at("Seq", h).kind, s.at("Seq", t).kind
	switch {
	case hk == KindEmpty:
		return t
	case tk == KindEmpty:
		return h
	case hk == KindNone, tk == KindNone:
		return NoneNode
	}
	return s.appendSeq(h, t)
}

// Or returns the union of h and t.
func (s *Store) Or(h, t NodeID) NodeID {
	hk, tk := s.at("Or", h).kind, s.at("Or", t).kind
	switch {
	case h == t:
		return h
	case hk == KindAll, tk == KindAll:
		return AllNode
	case hk == KindNone:
		return t
	case tk == KindNone:
		return h
	}
	return s.merge("Or", KindOr, h, t)
}

// And returns the intersection of h and t.
func (s *Store) And(h, t NodeID) NodeID {
	hk, tk := s.at("And", h).kind, s.at("And", t).kind
	switch {
	case h == t:
		return h
	case hk == KindAll:
		return t
	case tk == KindAll:
		return h
	case hk == KindNone, tk == KindNone:
		return NoneNode
	}
	return s.merge("And", KindAnd, h, t)
}

// Plus returns x x*.
func (s *Store) Plus(x NodeID) NodeID {
	return s.Seq(x, s.Star(x))
}

// Opt returns x | Empty.
func (s *Store) Opt(x NodeID) NodeID {
	return s.Or(x, EmptyNode)
}

// Complement returns the single symbols not matched by x, for x a set of
// single symbols (a character class).
func (s *Store) Complement(x NodeID) NodeID {
	return s.And(s.Not(x), s.AnyByte())
}

// Text builds the concatenation of the bytes of lit.
func (s *Store) Text(lit string) NodeID {
	r := EmptyNode
	for i := len(lit) - 1; i >= 0; i-- {
		r = s.Seq(s.Byte(lit[i]), r)
	}
	return r
}

// OrAll folds Or over xs. An empty list yields None.
func (s *Store) OrAll(xs ...NodeID) NodeID {
	r := NoneNode
	for _, x := range xs {
		r = s.Or(r, x)
	}
	return r
}

// SeqAll folds Seq over xs. An empty list yields Empty.
func (s *Store) SeqAll(xs ...NodeID) NodeID {
	r := EmptyNode
	for i := len(xs) - 1; i >= 0; i-- {
		r = s.Seq(xs[i], r)
	}
	return r
}
