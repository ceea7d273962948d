// Package sparse provides a sparse set of small integers with O(1) insert,
// membership and clear, and insertion-ordered iteration.
//
// The DFA analyses use it as a combined visited set and worklist over state
// indices: values appended while iterating by index are visited in the same
// pass.
package sparse

// Set is a set of uint32 values below a fixed capacity.
// The sparse array maps a value to its index in dense; a value is a member
// only if the two agree, so neither array needs clearing.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates a set that can hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was absent.
// Panics if value >= capacity.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.dense)
}

// At returns the i-th inserted element.
func (s *Set) At(i int) uint32 {
	return s.dense[i]
}

// Values returns the elements in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// Clear removes every element in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Capacity returns the exclusive upper bound on values.
func (s *Set) Capacity() int {
	return len(s.sparse)
}
