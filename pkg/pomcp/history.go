package pomcp

// Entry is one (action, observation) pair recorded in a History.
type Entry struct {
	Action      int
	Observation int
}

// History is the append-only sequence of (action, observation) pairs that
// keys the search tree. A Planner's History is the real-world prefix
// (everything confirmed via Update) followed by the in-simulation suffix
// grown during the current SelectAction call; it is truncated back to the
// prefix at the start of every simulation (see UCTSearch).
type History struct {
	entries []Entry
}

// Add appends a new (action, observation) pair.
func (h *History) Add(action, observation int) {
	h.entries = append(h.entries, Entry{Action: action, Observation: observation})
}

// Truncate drops the history back to length k. It is a no-op if k >= Size().
func (h *History) Truncate(k int) {
	if k < 0 {
		k = 0
	}
	if k < len(h.entries) {
		h.entries = h.entries[:k]
	}
}

// Size returns the number of entries.
func (h *History) Size() int {
	return len(h.entries)
}

// Back returns the most recently added entry. It panics on an empty history;
// callers are expected to know the history is non-empty before calling it.
func (h *History) Back() Entry {
	return h.entries[len(h.entries)-1]
}

// At returns the entry at index i from the start.
func (h *History) At(i int) Entry {
	return h.entries[i]
}

// FromEnd returns the entry offset positions before the end (FromEnd(0) ==
// Back()).
func (h *History) FromEnd(offset int) Entry {
	return h.entries[len(h.entries)-1-offset]
}

// Slice returns the entries from index start to the end, sharing the
// backing array; callers must not mutate the result.
func (h *History) Slice(start int) []Entry {
	if start < 0 {
		start = 0
	}
	if start > len(h.entries) {
		start = len(h.entries)
	}
	return h.entries[start:]
}

// Equal reports whether two histories hold the same sequence of entries.
func (h *History) Equal(other *History) bool {
	if len(h.entries) != len(other.entries) {
		return false
	}
	for i := range h.entries {
		if h.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of h.
func (h *History) Clone() History {
	cp := make([]Entry, len(h.entries))
	copy(cp, h.entries)
	return History{entries: cp}
}
