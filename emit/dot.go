// Package emit renders a compiled dfa.DFA as Graphviz, a plain transition
// table, or Go source.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/coregx/dfagen/dfa"
)

// DotOptions configures Dot.
type DotOptions struct {
	// GraphName is the digraph identifier. Default: "dfa"
	GraphName string

	// Accepting draws accepting states with a bold outline.
	Accepting bool
}

// Dot writes d as a Graphviz digraph. States are numbered by id; the start
// state is drawn as a double circle and the dead state is labelled
// "default". Each state's label lists its active marks. Transitions that
// differ from the one on symbol 0 are drawn with the symbol as label,
// followed by one unlabelled edge to the default target.
func Dot(w io.Writer, d *dfa.DFA, opts DotOptions) error {
	name := opts.GraphName
	if name == "" {
		name = "dfa"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", name)
	for _, st := range d.States() {
		if st.Dead {
			fmt.Fprintf(bw, "%d [label=\"default\"];\n", st.ID)
			continue
		}

		var attrs []string
		if st.ID == d.Start() {
			attrs = append(attrs, "shape=doublecircle")
		}
		if opts.Accepting && st.Accepting {
			attrs = append(attrs, "style=bold")
		}
		var label strings.Builder
		for _, m := range d.StateMarkNames(st.ID) {
			label.WriteString(m)
			label.WriteByte(' ')
		}
		attrs = append(attrs, "label="+dotQuote(label.String()))
		fmt.Fprintf(bw, "%d [%s];\n", st.ID, strings.Join(attrs, ","))

		for _, e := range st.Edges {
			fmt.Fprintf(bw, "%d -> %d [label=\"%d\"];\n", st.ID, e.Target, e.Symbol)
		}
		fmt.Fprintf(bw, "%d -> %d;\n", st.ID, st.Default)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote returns s as a DOT quoted string. Only the quote and backslash
// are escaped; other bytes, including UTF-8, pass through unchanged.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
