package sparse

import (
	"slices"
	"testing"
)

func TestSetBasic(t *testing.T) {
	s := NewSet(100)

	if s.Len() != 0 {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}

	s.Insert(10)
	s.Insert(3)
	if s.Len() != 3 {
		t.Errorf("len should be 3, got %d", s.Len())
	}

	s.Clear()
	if s.Len() != 0 || s.Contains(5) {
		t.Error("cleared set should be empty")
	}
	if !s.Insert(5) {
		t.Error("insert after clear should return true")
	}
}

func TestSetInsertionOrder(t *testing.T) {
	s := NewSet(10)
	for _, v := range []uint32{5, 2, 8, 1, 2} {
		s.Insert(v)
	}
	want := []uint32{5, 2, 8, 1}
	if !slices.Equal(s.Values(), want) {
		t.Errorf("Values() = %v, want %v", s.Values(), want)
	}
	if s.At(2) != 8 {
		t.Errorf("At(2) = %d, want 8", s.At(2))
	}
}

func TestSetWorklist(t *testing.T) {
	// Values inserted during index iteration are visited in the same pass.
	s := NewSet(16)
	s.Insert(1)
	for i := 0; i < s.Len(); i++ {
		if v := s.At(i); v*2 < 16 {
			s.Insert(v * 2)
		}
	}
	want := []uint32{1, 2, 4, 8}
	if !slices.Equal(s.Values(), want) {
		t.Errorf("Values() = %v, want %v", s.Values(), want)
	}
}

func TestSetOutOfRange(t *testing.T) {
	s := NewSet(4)
	if s.Contains(4) || s.Contains(1 << 31) {
		t.Error("out-of-range values are never members")
	}
	if s.Capacity() != 4 {
		t.Errorf("Capacity() = %d, want 4", s.Capacity())
	}
}
