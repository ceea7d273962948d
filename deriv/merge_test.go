package deriv

import "testing"

// permutations returns every ordering of xs.
func permutations(xs []NodeID) [][]NodeID {
	if len(xs) <= 1 {
		return [][]NodeID{append([]NodeID(nil), xs...)}
	}
	var out [][]NodeID
	for i := range xs {
		rest := make([]NodeID, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]NodeID{xs[i]}, p...))
		}
	}
	return out
}

// groupings combines xs with op in three associations: left fold, right
// fold and balanced halves.
func groupings(op func(h, t NodeID) NodeID, xs []NodeID) []NodeID {
	left := xs[0]
	for _, x := range xs[1:] {
		left = op(left, x)
	}
	right := xs[len(xs)-1]
	for i := len(xs) - 2; i >= 0; i-- {
		right = op(xs[i], right)
	}
	var balanced func([]NodeID) NodeID
	balanced = func(ys []NodeID) NodeID {
		if len(ys) == 1 {
			return ys[0]
		}
		mid := len(ys) / 2
		return op(balanced(ys[:mid]), balanced(ys[mid:]))
	}
	return []NodeID{left, right, balanced(xs)}
}

func TestMergeCanonical(t *testing.T) {
	s := newTestStore(t)
	atoms := []NodeID{
		s.Byte('a'),
		s.Star(s.Byte('b')),
		s.Text("cd"),
		s.Not(s.Byte('e')),
		s.Mark("m"),
	}

	ops := []struct {
		name string
		kind Kind
		op   func(h, t NodeID) NodeID
	}{
		{"Or", KindOr, s.Or},
		{"And", KindAnd, s.And},
	}
	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			want := InvalidNode
			for _, p := range permutations(atoms) {
				for _, got := range groupings(tt.op, p) {
					if want == InvalidNode {
						want = got
						continue
					}
					if got != want {
						t.Fatalf("order %v: got %s, want %s", p, s.Format(got), s.Format(want))
					}
				}
			}
			assertSortedChain(t, s, tt.kind, want, len(atoms))
		})
	}
}

func TestMergeDuplicates(t *testing.T) {
	s := newTestStore(t)
	a, b, c := s.Byte('a'), s.Byte('b'), s.Byte('c')

	abc := s.Or(a, s.Or(b, c))
	tests := []struct {
		name string
		got  NodeID
	}{
		{"repeat chain", s.Or(abc, abc)},
		{"overlapping chains", s.Or(s.Or(a, b), s.Or(b, c))},
		{"atoms twice", s.OrAll(c, b, a, c, b, a)},
		{"chain and atom", s.Or(s.Or(c, a), s.Or(b, a))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != abc {
				t.Errorf("got %s, want %s", s.Format(tt.got), s.Format(abc))
			}
		})
	}
	assertSortedChain(t, s, KindOr, abc, 3)
}

func TestIdempotence(t *testing.T) {
	s := newTestStore(t)
	xs := []NodeID{
		EmptyNode, AllNode, NoneNode,
		s.Byte('x'),
		s.Or(s.Byte('x'), s.Byte('y')),
		s.And(s.Star(s.Byte('x')), s.Not(s.Text("xx"))),
		s.Seq(s.Mark("k"), s.Byte('z')),
	}
	for _, x := range xs {
		if got := s.Or(x, x); got != x {
			t.Errorf("Or(x, x) = %s, want %s", s.Format(got), s.Format(x))
		}
		if got := s.And(x, x); got != x {
			t.Errorf("And(x, x) = %s, want %s", s.Format(got), s.Format(x))
		}
	}
}

func assertSortedChain(t *testing.T, s *Store, kind Kind, id NodeID, atoms int) {
	t.Helper()
	var seen []NodeID
	for s.Kind(id) == kind {
		head, tail := s.Children(id)
		if s.Kind(head) == kind {
			t.Fatalf("%v chain has a %v head: %s", kind, kind, s.Format(id))
		}
		seen = append(seen, head)
		id = tail
	}
	seen = append(seen, id)
	for i := 1; i < len(seen); i++ {
		if seen[i-1] >= seen[i] {
			t.Fatalf("%v chain atoms not strictly increasing: %v", kind, seen)
		}
	}
	if len(seen) != atoms {
		t.Errorf("%v chain has %d atoms, want %d", kind, len(seen), atoms)
	}
}
