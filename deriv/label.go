package deriv

// Exploration flags. A state explorer labels the nodes it discovers and
// later marks them done while emitting. Both flags live on the arena entry
// and are written at most once per Store.

// Label assigns the 1-based state label to id if it has none yet and
// reports whether it did.
func (s *Store) Label(id NodeID, label uint32) bool {
	n := s.at("Label", id)
	if n.state != 0 || label == 0 {
		return false
	}
	n.state = label
	s.explored = true
	return true
}

// Explored reports whether any node of the store has been labeled. Labels
// are write-once, so a store supports a single exploration.
func (s *Store) Explored() bool {
	return s.explored
}

// StateLabel returns the label assigned to id, or 0 if it is unlabeled.
func (s *Store) StateLabel(id NodeID) uint32 {
	return s.at("StateLabel", id).state
}

// MarkDone sets the emission flag of id and reports whether it was unset.
func (s *Store) MarkDone(id NodeID) bool {
	n := s.at("MarkDone", id)
	if n.done {
		return false
	}
	n.done = true
	return true
}

// Done reports whether the emission flag of id is set.
func (s *Store) Done(id NodeID) bool {
	return s.at("Done", id).done
}
