// Package dfa turns the derivative closure of a deriv node into a numbered
// deterministic automaton and runs it.
//
// States are dense integers starting at 0 (the start state). Each state
// records whether it accepts, the marks active at it and its transition
// function, compacted as a default target (the transition on symbol 0) plus
// the symbols whose target differs from the default.
//
// A DFA is immutable after Explore and safe for concurrent use.
package dfa

import (
	"fmt"

	"github.com/coregx/dfagen/deriv"
)

// Edge is a transition that differs from its state's default.
type Edge struct {
	Symbol byte
	Target int
}

// State describes one DFA state.
type State struct {
	// ID is the dense state index; 0 is the start state
	ID int

	// Node is the regex value the state stands for
	Node deriv.NodeID

	// Accepting is true if the state's language contains the empty string
	Accepting bool

	// Dead is true for the state of the None value, which rejects everything
	Dead bool

	// Marks lists the marks active at the state, ascending
	Marks []deriv.MarkID

	// Default is the target on symbol 0
	Default int

	// Edges lists the symbols whose target differs from Default, ascending
	Edges []Edge
}

// String returns a human-readable representation of the state
func (s State) String() string {
	return fmt.Sprintf("DFAState(id=%d, accepting=%v, dead=%v, marks=%v, default=%d, edges=%d)",
		s.ID, s.Accepting, s.Dead, s.Marks, s.Default, len(s.Edges))
}

// DFA is the explored automaton.
type DFA struct {
	states []State

	// trans is the full table: trans[state*256+symbol] = target
	trans []int32

	// marks is the mark name table indexed by deriv.MarkID
	marks []string

	// live[s] reports whether an accepting state is reachable from s
	live []bool
}

// Start returns the start state.
func (d *DFA) Start() int { return 0 }

// NumStates returns the number of states.
func (d *DFA) NumStates() int { return len(d.states) }

// State returns state i.
func (d *DFA) State(i int) State { return d.states[i] }

// States returns every state in id order. The slice must not be modified.
func (d *DFA) States() []State { return d.states }

// Next returns the target of state on symbol b.
func (d *DFA) Next(state int, b byte) int {
	return int(d.trans[state*deriv.AlphabetSize+int(b)])
}

// Accepting reports whether state accepts.
func (d *DFA) Accepting(state int) bool { return d.states[state].Accepting }

// DeadState returns the id of the dead state, or -1 if every state can
// still accept something.
func (d *DFA) DeadState() int {
	for i := range d.states {
		if d.states[i].Dead {
			return i
		}
	}
	return -1
}

// MarkNames returns the mark names indexed by deriv.MarkID.
func (d *DFA) MarkNames() []string { return d.marks }

// MarkName returns the name of mark id.
func (d *DFA) MarkName(id deriv.MarkID) string { return d.marks[id] }

// StateMarkNames returns the names of the marks active at state.
func (d *DFA) StateMarkNames(state int) []string {
	ms := d.states[state].Marks
	if len(ms) == 0 {
		return nil
	}
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = d.marks[m]
	}
	return out
}

// Row returns the 256 targets of state. The slice must not be modified.
func (d *DFA) Row(state int) []int32 {
	return d.trans[state*deriv.AlphabetSize : (state+1)*deriv.AlphabetSize]
}
