// Package prefilter finds candidate match positions before the automaton
// runs.
//
// A prefilter is built from the literal prefixes every match must start
// with (see Extract). Searching for those literals with memchr-style scans
// or an Aho-Corasick automaton skips the parts of the haystack where no match
// can begin, so the DFA only runs at candidate positions.
//
// Prefilters only report candidates: a position returned by Find may still
// fail to match. They never skip a real match start.
package prefilter

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/dfagen/dfa"
	"github.com/coregx/dfagen/simd"
)

// Prefilter reports candidate match starts.
type Prefilter interface {
	// Find returns the first candidate position at or after start, or -1.
	Find(haystack []byte, start int) int

	// LiteralLen returns the length of the literals searched for.
	LiteralLen() int

	// String names the search strategy.
	String() string
}

// New extracts literals from d and builds a prefilter for them.
// It returns nil if no useful literal set exists.
func New(d *dfa.DFA, cfg Config) (Prefilter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return Build(Extract(d, cfg))
}

// Build selects a search strategy for lits, which must all have the same
// length:
//   - one byte: Memchr
//   - two or three single bytes: Memchr2 / Memchr3
//   - one longer literal: Memmem
//   - anything else: Aho-Corasick
//
// It returns nil for an empty set.
func Build(lits [][]byte) (Prefilter, error) {
	if len(lits) == 0 || len(lits[0]) == 0 {
		return nil, nil
	}
	n := len(lits[0])
	for _, l := range lits[1:] {
		if len(l) != n {
			return nil, fmt.Errorf("prefilter: literals of different lengths %d and %d", n, len(l))
		}
	}

	switch {
	case n == 1 && len(lits) <= 3:
		bs := make([]byte, len(lits))
		for i, l := range lits {
			bs[i] = l[0]
		}
		return &byteSet{bytes: bs}, nil
	case len(lits) == 1:
		return &memmem{needle: append([]byte(nil), lits[0]...)}, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, l := range lits {
		builder.AddPattern(l)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("prefilter: building Aho-Corasick automaton: %w", err)
	}
	return &multi{auto: auto, n: n, count: len(lits)}, nil
}

// byteSet searches for up to three distinct bytes.
type byteSet struct {
	bytes []byte
}

func (p *byteSet) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	h := haystack[start:]
	var i int
	switch len(p.bytes) {
	case 1:
		i = simd.Memchr(h, p.bytes[0])
	case 2:
		i = simd.Memchr2(h, p.bytes[0], p.bytes[1])
	default:
		i = simd.Memchr3(h, p.bytes[0], p.bytes[1], p.bytes[2])
	}
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *byteSet) LiteralLen() int { return 1 }

func (p *byteSet) String() string {
	if len(p.bytes) == 1 {
		return fmt.Sprintf("memchr(%q)", p.bytes)
	}
	return fmt.Sprintf("memchr%d(%q)", len(p.bytes), p.bytes)
}

// memmem searches for a single literal.
type memmem struct {
	needle []byte
}

func (p *memmem) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	i := simd.Memmem(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memmem) LiteralLen() int { return len(p.needle) }

func (p *memmem) String() string { return fmt.Sprintf("memmem(%q)", p.needle) }

// multi searches for any of several equal-length literals.
type multi struct {
	auto  *ahocorasick.Automaton
	n     int
	count int
}

func (p *multi) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *multi) LiteralLen() int { return p.n }

func (p *multi) String() string {
	return fmt.Sprintf("aho-corasick(%d literals of length %d)", p.count, p.n)
}
