package dfa

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/coregx/dfagen/deriv"
	"github.com/coregx/dfagen/internal/conv"
)

// Options configures Explore.
type Options struct {
	// Logger receives a debug summary of the exploration. Nil discards.
	Logger logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.Out = io.Discard
	return l
}

// frame is one level of the depth-first walk: the node being expanded and
// the next symbol to derive it by.
type frame struct {
	node deriv.NodeID
	sym  int
}

// Explore discovers every node reachable from root by repeated derivation
// and returns them as a numbered DFA.
//
// The walk is depth-first in ascending symbol order. The labeling pass gives
// each newly discovered node the next label (1, 2, ...) on its store entry.
// A second pass, gated by the store's done flags, retraces the same walk and
// materializes the states; since both passes visit nodes in the same order,
// state i of the result is the node labeled i+1 and state 0 is root.
//
// Store capacity errors raised during derivation are returned. A store can
// be explored only once.
func Explore(store *deriv.Store, root deriv.NodeID, opts Options) (*DFA, error) {
	log := opts.logger()

	var d *DFA
	var xerr error
	err := store.Guard(func() {
		// StateLabel also rejects an invalid root
		if store.StateLabel(root) != 0 || store.Explored() {
			xerr = ErrAlreadyExplored
			return
		}
		count := label(store, root)
		d, xerr = emitStates(store, root, count)
	})
	if err != nil {
		return nil, err
	}
	if xerr != nil {
		return nil, xerr
	}

	d.computeLive()
	log.WithFields(logrus.Fields{
		"states": d.NumStates(),
		"nodes":  store.Len(),
		"marks":  store.MarkCount(),
	}).Debug("explored derivative closure")
	return d, nil
}

// label runs the labeling pass and returns the number of labeled nodes.
func label(store *deriv.Store, root deriv.NodeID) int {
	next := uint32(1)
	store.Label(root, next)
	next++

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.sym == deriv.AlphabetSize {
			stack = stack[:len(stack)-1]
			continue
		}
		b := byte(top.sym)
		top.sym++

		child := store.Derive(top.node, b)
		if store.Label(child, next) {
			next++
			stack = append(stack, frame{node: child})
		}
	}
	return int(next - 1)
}

// emitStates runs the done-gated pass, checks that it meets the states in
// label order and builds the transition table.
func emitStates(store *deriv.Store, root deriv.NodeID, count int) (*DFA, error) {
	d := &DFA{
		states: make([]State, 0, count),
		trans:  make([]int32, count*deriv.AlphabetSize),
		marks:  store.MarkNames(),
	}

	visit := func(id deriv.NodeID) error {
		want := uint32(len(d.states) + 1)
		if got := store.StateLabel(id); got != want {
			return &Error{
				Kind:    LabelMismatch,
				Message: fmt.Sprintf("node %d has label %d, emission order expects %d", id, got, want),
			}
		}
		st := State{
			ID:        len(d.states),
			Node:      id,
			Accepting: store.Nullable(id),
			Dead:      id == deriv.NoneNode,
			Marks:     store.Marks(id),
		}
		row := d.trans[st.ID*deriv.AlphabetSize : (st.ID+1)*deriv.AlphabetSize]
		for b := range row {
			row[b] = conv.IntToInt32(int(store.StateLabel(store.Derive(id, byte(b)))) - 1)
		}
		st.Default = int(row[0])
		for b, target := range row {
			if target != row[0] {
				st.Edges = append(st.Edges, Edge{Symbol: byte(b), Target: int(target)})
			}
		}
		d.states = append(d.states, st)
		return nil
	}

	store.MarkDone(root)
	if err := visit(root); err != nil {
		return nil, err
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.sym == deriv.AlphabetSize {
			stack = stack[:len(stack)-1]
			continue
		}
		b := byte(top.sym)
		top.sym++

		child := store.Derive(top.node, b)
		if store.MarkDone(child) {
			if err := visit(child); err != nil {
				return nil, err
			}
			stack = append(stack, frame{node: child})
		}
	}

	if len(d.states) != count {
		return nil, &Error{
			Kind:    LabelMismatch,
			Message: fmt.Sprintf("emitted %d states, labeled %d", len(d.states), count),
		}
	}
	return d, nil
}
