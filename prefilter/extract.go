package prefilter

import (
	"bytes"
	"sort"

	"github.com/coregx/dfagen/deriv"
	"github.com/coregx/dfagen/dfa"
)

type path struct {
	state int
	lit   []byte
}

// Extract returns a set of byte strings such that every non-empty match of
// d begins with one of them. It returns nil when no such set exists within
// the bounds of cfg, e.g. when the start state accepts, when the first byte
// is unconstrained, or when d accepts nothing.
//
// The walk is breadth-first over live transitions from the start state.
// A path ends at an accepting state. The result is truncated to the length
// of its shortest member, sorted and deduplicated, so every member has the
// same length.
func Extract(d *dfa.DFA, cfg Config) [][]byte {
	start := d.Start()
	if d.Accepting(start) || !d.CanAccept(start) {
		return nil
	}

	var done [][]byte
	frontier := []path{{state: start}}
	for depth := 0; depth < cfg.MaxLiteralLen && len(frontier) > 0; depth++ {
		var next []path
		var ended [][]byte
		for _, p := range frontier {
			if d.Accepting(p.state) {
				ended = append(ended, p.lit)
				continue
			}
			for b := 0; b < deriv.AlphabetSize; b++ {
				t := d.Next(p.state, byte(b))
				if !d.CanAccept(t) {
					continue
				}
				lit := make([]byte, len(p.lit)+1)
				copy(lit, p.lit)
				lit[len(p.lit)] = byte(b)
				next = append(next, path{state: t, lit: lit})
			}
		}
		if len(done)+len(ended)+len(next) > cfg.MaxLiterals {
			break
		}
		done = append(done, ended...)
		frontier = next
	}
	for _, p := range frontier {
		done = append(done, p.lit)
	}
	return normalize(done)
}

// normalize truncates lits to their common minimum length, then sorts and
// deduplicates them. It returns nil if that length is zero.
func normalize(lits [][]byte) [][]byte {
	if len(lits) == 0 {
		return nil
	}
	n := len(lits[0])
	for _, l := range lits[1:] {
		n = min(n, len(l))
	}
	if n == 0 {
		return nil
	}

	out := make([][]byte, len(lits))
	for i, l := range lits {
		out[i] = l[:n]
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })

	uniq := out[:1]
	for _, l := range out[1:] {
		if !bytes.Equal(l, uniq[len(uniq)-1]) {
			uniq = append(uniq, l)
		}
	}
	return uniq
}
