package schedule

// Queue is an immutable delivery sequence plus a forward-only cursor. The
// cursor is the only mutable state; the entries never change after
// generation.
type Queue struct {
	entries []Entry
	cursor  int
}

func (q *Queue) Len() int { return len(q.entries) }

// Entries returns a copy of the full sequence.
func (q *Queue) Entries() []Entry {
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Recipients, Businesses and Repeats expose the queue as three parallel
// ordered sequences, the shape the orchestration layer consumes.
func (q *Queue) Recipients() []string {
	out := make([]string, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.Recipient
	}
	return out
}

func (q *Queue) Businesses() []string {
	out := make([]string, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.Business
	}
	return out
}

func (q *Queue) Repeats() []bool {
	out := make([]bool, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.Repeat
	}
	return out
}

// Next advances the cursor. ok=false once the queue is exhausted.
func (q *Queue) Next() (Entry, bool) {
	if q.cursor >= len(q.entries) {
		return Entry{}, false
	}
	e := q.entries[q.cursor]
	q.cursor++
	return e, true
}

// Reset rewinds the cursor to the first entry.
func (q *Queue) Reset() { q.cursor = 0 }
