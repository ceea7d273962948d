package dfa

import (
	"github.com/coregx/dfagen/internal/conv"
	"github.com/coregx/dfagen/internal/sparse"
)

// computeLive marks the states from which some accepting state is
// reachable, by a backwards walk from the accepting states.
//
// The dead state is never live. With '!' and '&' other states can be unable
// to accept as well, since the simplification rules do not reduce every empty
// language to None. Searches stop as soon as they enter a state that is not
// live.
func (d *DFA) computeLive() {
	n := len(d.states)

	// Reverse adjacency, one entry per distinct (target, source) pair
	preds := make([][]uint32, n)
	seen := sparse.NewSet(n)
	for s := 0; s < n; s++ {
		seen.Clear()
		for _, t := range d.Row(s) {
			if seen.Insert(uint32(t)) {
				preds[t] = append(preds[t], conv.IntToUint32(s))
			}
		}
	}

	work := sparse.NewSet(n)
	for s := range d.states {
		if d.states[s].Accepting {
			work.Insert(conv.IntToUint32(s))
		}
	}
	for i := 0; i < work.Len(); i++ {
		for _, p := range preds[work.At(i)] {
			work.Insert(p)
		}
	}

	d.live = make([]bool, n)
	for _, s := range work.Values() {
		d.live[s] = true
	}
}

// CanAccept reports whether an accepting state is reachable from state.
func (d *DFA) CanAccept(state int) bool {
	return d.live[state]
}
