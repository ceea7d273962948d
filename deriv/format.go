package deriv

import (
	"strconv"
	"strings"
)

// Format renders id in constructor notation, e.g. Seq(Lit(97, 1), Star(Lit(98, 1))).
// Marks are rendered with their names.
func (s *Store) Format(id NodeID) string {
	var sb strings.Builder
	s.format(&sb, id)
	return sb.String()
}

func (s *Store) format(sb *strings.Builder, id NodeID) {
	if !s.Valid(id) {
		sb.WriteString("Invalid()")
		return
	}
	n := &s.nodes[id]
	sb.WriteString(n.kind.String())
	sb.WriteByte('(')
	switch n.kind {
	case KindLiteral:
		sb.WriteString(strconv.Itoa(int(n.a)))
		sb.WriteString(", ")
		sb.WriteString(strconv.Itoa(int(n.b)))
	case KindMark:
		sb.WriteString(s.marks[n.a])
	case KindStar, KindNot:
		s.format(sb, NodeID(n.a))
	case KindSeq, KindOr, KindAnd:
		s.format(sb, NodeID(n.a))
		sb.WriteString(", ")
		s.format(sb, NodeID(n.b))
	}
	sb.WriteByte(')')
}
