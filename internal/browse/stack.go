package browse

// Stack is the drill-down path from root to the current depth. Only the
// top level is interactively mutable; popping discards everything fetched
// beneath it.
type Stack struct {
	levels     []*Level
	previewSeq uint64
}

// NewStack returns a stack whose root level holds the given entries.
func NewStack(root []Entry) *Stack {
	return &Stack{levels: []*Level{newLevel(root)}}
}

// Depth reports the number of levels, always at least 1.
func (s *Stack) Depth() int { return len(s.levels) }

// Top returns the current level.
func (s *Stack) Top() *Level { return s.levels[len(s.levels)-1] }

// Push appends a new top level seeded with already-fetched entries. The
// new level starts with the cursor on the first item and no filter.
func (s *Stack) Push(entries []Entry) {
	parent := s.Top()
	parent.LastCursor = parent.Cursor
	s.levels = append(s.levels, newLevel(entries))
}

// Pop removes the top level. At depth 1 it is a no-op and returns false.
func (s *Stack) Pop() bool {
	if len(s.levels) <= 1 {
		return false
	}
	s.levels = s.levels[:len(s.levels)-1]
	parent := s.Top()
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	}
	parent.LastCursor = -1
	return true
}

// ReplaceTop swaps the top level's entries in place, keeping the cursor
// clamped. Used when a screen refreshes the current listing.
func (s *Stack) ReplaceTop(entries []Entry) {
	top := s.Top()
	top.Full = cloneEntries(entries)
	top.applyFilter()
}

// Current returns the top level's visible entries and cursor index.
func (s *Stack) Current() ([]Entry, int) {
	top := s.Top()
	return top.Items, top.Cursor
}

// Selected returns the entry under the top level's cursor.
func (s *Stack) Selected() (Entry, bool) {
	return s.Top().Selected()
}

// IssuePreview allocates a sequence number for a prefetch. The latest
// issued number is the only one ApplyPreview will accept, so a prefetch
// superseded by a newer navigation mutation is discarded on arrival.
func (s *Stack) IssuePreview() uint64 {
	s.previewSeq++
	return s.previewSeq
}

// ApplyPreview stores prefetched content in the top level's preview slot
// if seq is still the latest issued. Returns false for stale results.
func (s *Stack) ApplyPreview(seq uint64, entries []Entry) bool {
	if seq != s.previewSeq {
		return false
	}
	s.Top().Preview = cloneEntries(entries)
	return true
}

// Preview returns the top level's prefetch slot.
func (s *Stack) Preview() []Entry {
	return s.Top().Preview
}
