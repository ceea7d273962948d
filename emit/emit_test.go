package emit

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/dfagen/deriv"
	"github.com/coregx/dfagen/dfa"
	"github.com/coregx/dfagen/syntax"
)

func explore(t *testing.T, pattern string) *dfa.DFA {
	t.Helper()
	s := deriv.MustNewStore(deriv.DefaultConfig())
	root, err := syntax.Parse(s, pattern)
	require.NoError(t, err)
	d, err := dfa.Explore(s, root, dfa.Options{})
	require.NoError(t, err)
	return d
}

func TestDot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dot(&buf, explore(t, "a(b|c)*"), DotOptions{}))

	want := `digraph dfa {
0 [shape=doublecircle,label=""];
0 -> 2 [label="97"];
0 -> 1;
1 [label="default"];
2 [label=""];
2 -> 2 [label="98"];
2 -> 2 [label="99"];
2 -> 1;
}
`
	assert.Equal(t, want, buf.String())
}

func TestDotMarksAndOptions(t *testing.T) {
	var buf bytes.Buffer
	err := Dot(&buf, explore(t, "`x`a*"), DotOptions{GraphName: "marks", Accepting: true})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph marks {\n"))
	assert.Contains(t, out, `0 [shape=doublecircle,style=bold,label="x "];`)
}

func TestDotLabelEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dot(&buf, explore(t, "`é\"\\`a*"), DotOptions{}))

	out := buf.String()
	assert.Contains(t, out, `0 [shape=doublecircle,label="é\"\\ "];`)
	assert.NotContains(t, out, `\u`)
	assert.NotContains(t, out, `\x`)
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, explore(t, "a(b|c)*")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"STATE", "FLAGS", "MARKS", "DEFAULT", "EDGES"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "start", "-", "1", "97:2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "dead", "-", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"2", "accept", "-", "1", "98:2", "99:2"}, strings.Fields(lines[3]))
}

func TestTableMarks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, explore(t, "`a``b`x")))
	assert.Contains(t, strings.Fields(strings.Split(buf.String(), "\n")[1]), "a,b")
}

func TestGoCode(t *testing.T) {
	var buf bytes.Buffer
	err := GoCode(&buf, explore(t, "a(b|c)*"), GoOptions{Package: "gen", Name: "MatchABC", Pattern: "a(b|c)*"})
	require.NoError(t, err)

	src := buf.String()
	_, err = parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err, src)

	assert.Contains(t, src, "// Code generated by dfagen. DO NOT EDIT.")
	assert.Contains(t, src, "package gen")
	assert.Contains(t, src, "func MatchABC(input []byte) (state int, ok bool) {")
	assert.Contains(t, src, "var MatchABCMarks = [][]string{")
	assert.Contains(t, src, "case 98, 99:")
	assert.Contains(t, src, `// MatchABC reports whether input matches "a(b|c)*".`)
}

func TestGoCodeNoByteSwitch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GoCode(&buf, explore(t, ".*"), GoOptions{}))

	src := buf.String()
	_, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err, src)
	assert.Contains(t, src, "for range input {")
	assert.Contains(t, src, "func Match(")
}

func TestGoCodeMarks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GoCode(&buf, explore(t, "`x`a*"), GoOptions{}))
	assert.Contains(t, buf.String(), `0: {"x"},`)
}

func TestGoCodeInvalidName(t *testing.T) {
	var buf bytes.Buffer
	err := GoCode(&buf, explore(t, "a"), GoOptions{Name: "not valid"})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
