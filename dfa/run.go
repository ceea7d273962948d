package dfa

// Run feeds input to the automaton from the start state and returns the
// final state.
func (d *DFA) Run(input []byte) int {
	s := 0
	for _, b := range input {
		s = d.Next(s, b)
	}
	return s
}

// Match reports whether the automaton accepts all of input.
func (d *DFA) Match(input []byte) bool {
	s := 0
	for _, b := range input {
		s = d.Next(s, b)
		if !d.live[s] {
			return false
		}
	}
	return d.states[s].Accepting
}

// LongestMatchAt returns the end of the longest match of the automaton
// starting exactly at start, or -1 if no prefix of haystack[start:] matches.
func (d *DFA) LongestMatchAt(haystack []byte, start int) int {
	end := -1
	s := 0
	if d.states[s].Accepting {
		end = start
	}
	for i := start; i < len(haystack); i++ {
		s = d.Next(s, haystack[i])
		if !d.live[s] {
			break
		}
		if d.states[s].Accepting {
			end = i + 1
		}
	}
	return end
}

// FindAt returns the leftmost-longest match in haystack starting at or
// after at, as [start, end) offsets. ok is false if there is none.
func (d *DFA) FindAt(haystack []byte, at int) (start, end int, ok bool) {
	if !d.live[0] {
		return -1, -1, false
	}
	for start = at; start <= len(haystack); start++ {
		if end = d.LongestMatchAt(haystack, start); end >= 0 {
			return start, end, true
		}
	}
	return -1, -1, false
}

// Find is FindAt from offset 0.
func (d *DFA) Find(haystack []byte) (start, end int, ok bool) {
	return d.FindAt(haystack, 0)
}
