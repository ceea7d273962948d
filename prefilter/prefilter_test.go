package prefilter

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/coregx/dfagen/deriv"
	"github.com/coregx/dfagen/dfa"
	"github.com/coregx/dfagen/syntax"
)

func explore(t *testing.T, pattern string) *dfa.DFA {
	t.Helper()
	s := deriv.MustNewStore(deriv.DefaultConfig())
	root, err := syntax.Parse(s, pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	d, err := dfa.Explore(s, root, dfa.Options{})
	if err != nil {
		t.Fatalf("Explore(%q): %v", pattern, err)
	}
	return d
}

func TestExtract(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"abc", []string{"abc"}},
		{"foo|bar", []string{"bar", "foo"}},
		{"ab*c", []string{"ab", "ac"}},
		{"a*b", []string{"a", "b"}},
		{"[0-9]+", []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{"x[0-9]", []string{"x"}},
		{"hello world", []string{"hello wo"}},
		{"a*", nil},
		{".*x", nil},
		{"a&b", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := Extract(explore(t, tt.pattern), DefaultConfig())
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
			for i := range got {
				if string(got[i]) != tt.want[i] {
					t.Errorf("Extract(%q)[%d] = %q, want %q", tt.pattern, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractLimits(t *testing.T) {
	d := explore(t, "abcdef")
	got := Extract(d, DefaultConfig().WithMaxLiteralLen(3))
	if len(got) != 1 || string(got[0]) != "abc" {
		t.Errorf("MaxLiteralLen 3: %q, want [abc]", got)
	}

	// [a-d][a-d] has 16 two-byte prefixes; with a budget of 8 the walk
	// stops after the first byte.
	d = explore(t, "[a-d][a-d]x")
	got = Extract(d, DefaultConfig().WithMaxLiterals(8))
	if len(got) != 4 {
		t.Errorf("MaxLiterals 8: %q, want 4 single bytes", got)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		lits     []string
		strategy string
		haystack string
		want     int
	}{
		{[]string{"a"}, `memchr("a")`, "xxxa", 3},
		{[]string{"a", "b"}, `memchr2("ab")`, "xxxbxa", 3},
		{[]string{"a", "b", "c"}, `memchr3("abc")`, "xxxcxa", 3},
		{[]string{"needle"}, `memmem("needle")`, "haystack with a needle", 16},
		{[]string{"ab", "cd"}, "aho-corasick(2 literals of length 2)", "xxcdab", 2},
		{[]string{"a", "b", "c", "d"}, "aho-corasick(4 literals of length 1)", "xxxdxa", 3},
		{[]string{"ab", "cd"}, "aho-corasick(2 literals of length 2)", "xxxx", -1},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			lits := make([][]byte, len(tt.lits))
			for i, l := range tt.lits {
				lits[i] = []byte(l)
			}
			pf, err := Build(lits)
			if err != nil {
				t.Fatal(err)
			}
			if pf.String() != tt.strategy {
				t.Errorf("String() = %s, want %s", pf.String(), tt.strategy)
			}
			if pf.LiteralLen() != len(tt.lits[0]) {
				t.Errorf("LiteralLen() = %d", pf.LiteralLen())
			}
			if got := pf.Find([]byte(tt.haystack), 0); got != tt.want {
				t.Errorf("Find(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
			if got := pf.Find([]byte(tt.haystack), len(tt.haystack)); got != -1 {
				t.Errorf("Find at end = %d, want -1", got)
			}
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	pf, err := Build(nil)
	if pf != nil || err != nil {
		t.Errorf("Build(nil) = %v, %v", pf, err)
	}
}

func TestBuildUnequalLengths(t *testing.T) {
	if _, err := Build([][]byte{[]byte("a"), []byte("bc")}); err == nil {
		t.Error("expected an error for literals of different lengths")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(explore(t, "abc"), DefaultConfig().WithMaxLiterals(0))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "MaxLiterals" {
		t.Errorf("New error = %v, want ConfigError for MaxLiterals", err)
	}
}

// Every position where a match starts must be reported as a candidate.
func TestPrefilterNeverSkipsMatch(t *testing.T) {
	patterns := []string{
		"abc", "foo|bar", "ab*c", "a*b", "[0-9]+", "x[0-9]",
		"(ab|cd)e", "(a|b)*abb", "`m`ab+", "ab&(a|b)*", "(abc|abd|bcd|cda)",
	}
	rng := rand.New(rand.NewSource(11))
	for _, p := range patterns {
		d := explore(t, p)
		pf, err := New(d, DefaultConfig())
		if err != nil {
			t.Fatalf("New(%q): %v", p, err)
		}
		if pf == nil {
			continue
		}
		for i := 0; i < 200; i++ {
			var sb strings.Builder
			for j := rng.Intn(24); j > 0; j-- {
				sb.WriteByte("abcdex01"[rng.Intn(8)])
			}
			h := []byte(sb.String())
			for pos := 0; pos <= len(h); pos++ {
				if d.LongestMatchAt(h, pos) < 0 {
					continue
				}
				if got := pf.Find(h, pos); got != pos {
					t.Fatalf("%s on %q: match at %d, Find(%d) = %d", p, h, pos, pos, got)
				}
			}
		}
	}
}
