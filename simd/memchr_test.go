package simd

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestMemchr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty", "", 'a', -1},
		{"short hit", "xya", 'a', 2},
		{"short miss", "xyz", 'a', -1},
		{"first lane", "abcdefghijk", 'a', 0},
		{"last lane", "bcdefgha", 'a', 7},
		{"second word", "bbbbbbbbbbba", 'a', 11},
		{"tail", "bbbbbbbbbba", 'a', 10},
		{"zero byte", "abc\x00def", 0, 3},
		{"high byte", "aaaaaaaa\xff", 0xff, 8},
		{"first of many", "xxxxxxxaxxxxaxxa", 'a', 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memchr([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestMemchrN(t *testing.T) {
	h := []byte("the quick brown fox jumps over the lazy dog")
	if got := Memchr2(h, 'z', 'q'); got != 4 {
		t.Errorf("Memchr2 = %d, want 4", got)
	}
	if got := Memchr3(h, 'z', 'y', 'x'); got != 18 {
		t.Errorf("Memchr3 = %d, want 18", got)
	}
	if got := Memchr3(h, '1', '2', '3'); got != -1 {
		t.Errorf("Memchr3 = %d, want -1", got)
	}
}

func indexFunc(h []byte, ns ...byte) int {
	for i, c := range h {
		if bytes.IndexByte(ns, c) >= 0 {
			return i
		}
	}
	return -1
}

func TestMemchrRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		h := make([]byte, rng.Intn(40))
		for j := range h {
			h[j] = h0(rng)
		}
		n1, n2, n3 := h0(rng), h0(rng), h0(rng)

		if got, want := Memchr(h, n1), indexFunc(h, n1); got != want {
			t.Fatalf("Memchr(%x, %x) = %d, want %d", h, n1, got, want)
		}
		if got, want := Memchr2(h, n1, n2), indexFunc(h, n1, n2); got != want {
			t.Fatalf("Memchr2(%x, %x, %x) = %d, want %d", h, n1, n2, got, want)
		}
		if got, want := Memchr3(h, n1, n2, n3), indexFunc(h, n1, n2, n3); got != want {
			t.Fatalf("Memchr3(%x, %x, %x, %x) = %d, want %d", h, n1, n2, n3, got, want)
		}
	}
}

// h0 draws bytes around 0x80 and just above 0x00, where the subtraction
// borrows in zeroLanes cross lanes.
func h0(rng *rand.Rand) byte {
	return byte(rng.Intn(6)) + 0x7d + byte(rng.Intn(2))*0x85
}

func TestMemmem(t *testing.T) {
	tests := []struct {
		haystack, needle string
		want             int
	}{
		{"hello world", "world", 6},
		{"hello world", "xyz", -1},
		{"aaaaaabaaaa", "aab", 5},
		{"abc", "", 0},
		{"ab", "abc", -1},
		{"xxxxxxxxxxxxqzq", "qzq", 12},
		{"zzzzqzzzqzq", "qzq", 8},
	}
	for _, tt := range tests {
		if got := Memmem([]byte(tt.haystack), []byte(tt.needle)); got != tt.want {
			t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
		}
	}

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		h := make([]byte, rng.Intn(30))
		for j := range h {
			h[j] = "abc"[rng.Intn(3)]
		}
		n := make([]byte, 1+rng.Intn(4))
		for j := range n {
			n[j] = "abc"[rng.Intn(3)]
		}
		if got, want := Memmem(h, n), bytes.Index(h, n); got != want {
			t.Fatalf("Memmem(%q, %q) = %d, want %d", h, n, got, want)
		}
	}
}

func TestRarestByte(t *testing.T) {
	b, i := RarestByte([]byte("ezra"))
	if b != 'z' || i != 2 {
		t.Errorf("RarestByte(ezra) = %q, %d", b, i)
	}
	b, i = RarestByte([]byte("aa"))
	if b != 'a' || i != 1 {
		t.Errorf("RarestByte(aa) = %q, %d, want the last byte on ties", b, i)
	}
}
