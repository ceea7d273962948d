package dfa

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a(b|c)*", "abcb", true},
		{"a(b|c)*", "a", true},
		{"a(b|c)*", "x", false},
		{"a(b|c)*", "", false},
		{"(a|b)*abb", "babb", true},
		{"(a|b)*abb", "abba", false},
		{"[^0-9]+", "abc", true},
		{"[^0-9]+", "ab3", false},
		{"(.*foo.*)&!(.*bar.*)", "xxfooyy", true},
		{"(.*foo.*)&!(.*bar.*)", "foobar", false},
		{"a!", "", true},
		{"a!", "a", false},
		{"a!", "aa", true},
		{"`m`x?", "", true},
		{"\\t+", "\t\t", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			_, _, d := compile(t, tt.pattern)
			if got := d.Match([]byte(tt.input)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		pattern    string
		haystack   string
		start, end int
		ok         bool
	}{
		{"ab+", "xxabbbyab", 2, 6, true},
		{"ab+", "xxaxxa", -1, -1, false},
		{"a*", "bbb", 0, 0, true},
		{"[0-9]+", "order 66 now", 6, 8, true},
		{"foo|foobar", "a foobar", 2, 8, true},
		{"a&b", "ab", -1, -1, false},
		{"x", "", -1, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			_, _, d := compile(t, tt.pattern)
			start, end, ok := d.Find([]byte(tt.haystack))
			if start != tt.start || end != tt.end || ok != tt.ok {
				t.Errorf("Find(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.haystack, start, end, ok, tt.start, tt.end, tt.ok)
			}
		})
	}
}

func TestFindAt(t *testing.T) {
	_, _, d := compile(t, "ab")
	h := []byte("ab ab ab")

	var got [][2]int
	for at := 0; ; {
		start, end, ok := d.FindAt(h, at)
		if !ok {
			break
		}
		got = append(got, [2]int{start, end})
		at = end
	}
	want := [][2]int{{0, 2}, {3, 5}, {6, 8}}
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCanAccept(t *testing.T) {
	_, _, d := compile(t, "a&b")
	if d.CanAccept(0) {
		t.Error("a&b accepts nothing, its start state cannot be live")
	}

	_, _, d = compile(t, "ab")
	if !d.CanAccept(0) {
		t.Error("start of ab must be live")
	}
	if dead := d.DeadState(); dead < 0 || d.CanAccept(dead) {
		t.Errorf("dead state %d must exist and not be live", dead)
	}
}
