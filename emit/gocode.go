package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"

	"github.com/coregx/dfagen/dfa"
)

// GoOptions configures GoCode.
type GoOptions struct {
	// Package is the package clause of the generated file. Default: "main"
	Package string

	// Name is the generated function name. Default: "Match"
	Name string

	// Pattern is quoted in the generated doc comment when set.
	Pattern string
}

// GoCode writes d as a gofmt-formatted Go source file declaring
//
//	func <Name>(input []byte) (state int, ok bool)
//
// which runs the automaton over input as nested switch statements and
// reports the final state and whether it accepts, and
//
//	var <Name>Marks [][]string
//
// holding the mark names active at each state.
func GoCode(w io.Writer, d *dfa.DFA, opts GoOptions) error {
	pkg, name := opts.Package, opts.Name
	if pkg == "" {
		pkg = "main"
	}
	if name == "" {
		name = "Match"
	}
	if !token.IsIdentifier(pkg) || !token.IsIdentifier(name) {
		return fmt.Errorf("emit: invalid Go identifier in package %q / name %q", pkg, name)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by dfagen. DO NOT EDIT.\n\npackage %s\n\n", pkg)

	fmt.Fprintf(&b, "// %sMarks lists the marks active at each state of %s.\n", name, name)
	fmt.Fprintf(&b, "var %sMarks = [][]string{\n", name)
	for _, st := range d.States() {
		names := d.StateMarkNames(st.ID)
		if len(names) == 0 {
			fmt.Fprintf(&b, "%d: nil,\n", st.ID)
			continue
		}
		quoted := make([]string, len(names))
		for i, n := range names {
			quoted[i] = fmt.Sprintf("%q", n)
		}
		fmt.Fprintf(&b, "%d: {%s},\n", st.ID, strings.Join(quoted, ", "))
	}
	b.WriteString("}\n\n")

	if opts.Pattern != "" {
		fmt.Fprintf(&b, "// %s reports whether input matches %q.\n", name, opts.Pattern)
	} else {
		fmt.Fprintf(&b, "// %s runs the automaton over input.\n", name)
	}
	b.WriteString("// It returns the final state and whether that state accepts.\n")
	fmt.Fprintf(&b, "func %s(input []byte) (state int, ok bool) {\n", name)
	loop := "for range input {\n"
	for _, st := range d.States() {
		if !st.Dead && len(st.Edges) > 0 {
			loop = "for _, b := range input {\n"
			break
		}
	}
	b.WriteString(loop + "switch state {\n")
	for _, st := range d.States() {
		fmt.Fprintf(&b, "case %d:\n", st.ID)
		if st.Dead {
			b.WriteString("return state, false\n")
			continue
		}
		writeRow(&b, st)
	}
	b.WriteString("}\n}\n")

	var accepting []string
	for _, st := range d.States() {
		if st.Accepting {
			accepting = append(accepting, fmt.Sprint(st.ID))
		}
	}
	if len(accepting) > 0 {
		fmt.Fprintf(&b, "switch state {\ncase %s:\nreturn state, true\n}\n", strings.Join(accepting, ", "))
	}
	b.WriteString("return state, false\n}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("emit: formatting generated code: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// writeRow writes the inner switch of one state, grouping symbols that
// share a target into one case.
func writeRow(b *bytes.Buffer, st dfa.State) {
	if len(st.Edges) == 0 {
		if st.Default != st.ID {
			fmt.Fprintf(b, "state = %d\n", st.Default)
		}
		return
	}

	var order []int
	groups := make(map[int][]string)
	for _, e := range st.Edges {
		if _, ok := groups[e.Target]; !ok {
			order = append(order, e.Target)
		}
		groups[e.Target] = append(groups[e.Target], fmt.Sprint(e.Symbol))
	}

	b.WriteString("switch b {\n")
	for _, t := range order {
		fmt.Fprintf(b, "case %s:\n", strings.Join(groups[t], ", "))
		if t != st.ID {
			fmt.Fprintf(b, "state = %d\n", t)
		}
	}
	if st.Default != st.ID {
		fmt.Fprintf(b, "default:\nstate = %d\n", st.Default)
	}
	b.WriteString("}\n")
}
