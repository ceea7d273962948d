package emit

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/coregx/dfagen/dfa"
)

// Table writes d as a plain-text transition table, one state per line:
//
//	STATE  FLAGS   MARKS  DEFAULT  EDGES
//	0      start   -      1        97:2
//	1      dead    -      1
//	2      accept  -      1        98:2 99:2
func Table(w io.Writer, d *dfa.DFA) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tFLAGS\tMARKS\tDEFAULT\tEDGES")
	for _, st := range d.States() {
		var flags []string
		if st.ID == d.Start() {
			flags = append(flags, "start")
		}
		if st.Accepting {
			flags = append(flags, "accept")
		}
		if st.Dead {
			flags = append(flags, "dead")
		}

		edges := make([]string, len(st.Edges))
		for i, e := range st.Edges {
			edges[i] = fmt.Sprintf("%d:%d", e.Symbol, e.Target)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			st.ID, orDash(strings.Join(flags, ",")), orDash(strings.Join(d.StateMarkNames(st.ID), ",")),
			st.Default, strings.Join(edges, " "))
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
