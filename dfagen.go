// Package dfagen compiles regular expressions into deterministic finite
// automata by Brzozowski derivatives.
//
// A pattern is parsed into a hash-consed regex value; the derivative of that
// value by every byte, and of each result in turn, is taken until no new
// values appear. Each distinct value is one DFA state, so matching runs in
// one table lookup per input byte with no backtracking.
//
// Besides '|', '*', '+', '?' and classes, patterns support intersection
// ('&'), complement ('!', postfix) and named marks (`name`) that report
// which parts of a pattern are active at a state.
//
// Basic usage:
//
//	re, err := dfagen.Compile("[a-z]+@[a-z]+\\.(com|org)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("gopher@golang.org") // true
//	re.FindString("mail gopher@golang.org now") // "gopher@golang.org"
//
// Match tests the whole input against the pattern. Find searches for the
// leftmost-longest match.
//
// The alphabet is the 256 byte values; there is no Unicode awareness.
package dfagen

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/coregx/dfagen/deriv"
	"github.com/coregx/dfagen/dfa"
	"github.com/coregx/dfagen/prefilter"
	"github.com/coregx/dfagen/syntax"
)

// Regex is a compiled pattern. A Regex is immutable and safe for concurrent
// use.
type Regex struct {
	pattern string
	dfa     *dfa.DFA
	pf      prefilter.Prefilter
}

// CompileError reports a pattern that could not be compiled.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("dfagen: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying syntax, store or config error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
//
// Example:
//
//	var ident = dfagen.MustCompile("[a-zA-Z_][a-zA-Z0-9_]*")
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with cfg. Every error is a
// *CompileError; errors.Is works against syntax.ErrMalformedInput,
// deriv.ErrCapacityExceeded and the other package sentinels.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	log = log.WithField("pattern", pattern)

	store, err := deriv.NewStore(cfg.Store)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	root, err := syntax.Parse(store, pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	d, err := dfa.Explore(store, root, dfa.Options{Logger: log})
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	re := &Regex{pattern: pattern, dfa: d}
	if cfg.EnablePrefilter {
		re.pf, err = prefilter.New(d, cfg.Prefilter)
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
	}

	fields := logrus.Fields{"states": d.NumStates(), "nodes": store.Len()}
	if re.pf != nil {
		fields["prefilter"] = re.pf.String()
	}
	log.WithFields(fields).Debug("compiled pattern")
	return re, nil
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// DFA returns the compiled automaton.
func (r *Regex) DFA() *dfa.DFA {
	return r.dfa
}

// Prefilter returns the candidate search used by Find, or nil.
func (r *Regex) Prefilter() prefilter.Prefilter {
	return r.pf
}

// NumStates returns the number of DFA states.
func (r *Regex) NumStates() int {
	return r.dfa.NumStates()
}

// Match reports whether all of b matches the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.dfa.Match(b)
}

// MatchString reports whether all of s matches the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.dfa.Match([]byte(s))
}

// Marks returns the names of the marks active at the state reached after
// reading all of b, in mark id order.
//
// Example:
//
//	re := dfagen.MustCompile("`key`[a-z]+=`value`[0-9]*")
//	re.Marks(nil)              // [key]
//	re.Marks([]byte("port="))  // [value]
//	re.Marks([]byte("po"))     // nil
func (r *Regex) Marks(b []byte) []string {
	return r.dfa.StateMarkNames(r.dfa.Run(b))
}

// Find returns the leftmost-longest match in b, or nil.
func (r *Regex) Find(b []byte) []byte {
	loc := r.FindIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]:loc[1]]
}

// FindString returns the leftmost-longest match in s, or "".
func (r *Regex) FindString(s string) string {
	loc := r.FindIndex([]byte(s))
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindIndex returns the location of the leftmost-longest match in b as
// b[loc[0]:loc[1]], or nil.
func (r *Regex) FindIndex(b []byte) []int {
	start, end, ok := r.findAt(b, 0, r.pf)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is FindIndex on a string.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAllIndex returns the successive non-overlapping matches in b.
// If n > 0 it returns at most n matches.
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}

	// One tracker per call: it retires the prefilter when candidates
	// rarely confirm.
	var tracker *prefilter.Tracker
	if r.pf != nil {
		tracker = prefilter.NewTracker(r.pf)
	}

	var out [][]int
	for pos := 0; pos <= len(b); {
		var pf prefilter.Prefilter
		if tracker != nil && tracker.IsActive() {
			pf = trackedPrefilter{tracker}
		}
		start, end, ok := r.findAt(b, pos, pf)
		if !ok {
			break
		}
		out = append(out, []int{start, end})
		if n > 0 && len(out) >= n {
			break
		}
		if end > start {
			pos = end
		} else {
			pos = end + 1
		}
	}
	return out
}

// FindAll returns the text of the successive non-overlapping matches in b.
// If n > 0 it returns at most n matches.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	locs := r.FindAllIndex(b, n)
	if locs == nil {
		return nil
	}
	out := make([][]byte, len(locs))
	for i, loc := range locs {
		out[i] = b[loc[0]:loc[1]:loc[1]]
	}
	return out
}

// FindAllString returns the successive non-overlapping matches in s.
// If n > 0 it returns at most n matches.
func (r *Regex) FindAllString(s string, n int) []string {
	locs := r.FindAllIndex([]byte(s), n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// Count returns the number of non-overlapping matches in b.
func (r *Regex) Count(b []byte) int {
	return len(r.FindAllIndex(b, -1))
}

// findAt returns the leftmost-longest match starting at or after at. With
// a prefilter, only the candidate positions it reports are tried.
func (r *Regex) findAt(b []byte, at int, pf prefilter.Prefilter) (start, end int, ok bool) {
	if pf == nil {
		return r.dfa.FindAt(b, at)
	}
	for at <= len(b) {
		pos := pf.Find(b, at)
		if pos < 0 {
			if t, isTracked := pf.(trackedPrefilter); isTracked && !t.IsActive() {
				return r.dfa.FindAt(b, at)
			}
			return -1, -1, false
		}
		if end = r.dfa.LongestMatchAt(b, pos); end >= 0 {
			if t, isTracked := pf.(trackedPrefilter); isTracked {
				t.ConfirmMatch()
			}
			return pos, end, true
		}
		at = pos + 1
	}
	return -1, -1, false
}

// trackedPrefilter adapts a Tracker to the Prefilter interface.
type trackedPrefilter struct {
	*prefilter.Tracker
}

func (t trackedPrefilter) LiteralLen() int { return t.Inner().LiteralLen() }

func (t trackedPrefilter) String() string { return t.Inner().String() }
