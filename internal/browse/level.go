package browse

import "strings"

// Level is one depth of the browse hierarchy. Full holds the fetched
// entries unmodified; Items is the view after the filter. Cursor indexes
// Items.
type Level struct {
	Full           []Entry
	Items          []Entry
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Filter         string
	Preview        []Entry
}

func newLevel(entries []Entry) *Level {
	l := &Level{LastCursor: -1}
	l.Full = cloneEntries(entries)
	l.Items = cloneEntries(entries)
	return l
}

// Empty reports whether the filtered view has no entries.
func (l *Level) Empty() bool { return len(l.Items) == 0 }

// Selected returns the entry under the cursor, or ok=false on an empty
// view.
func (l *Level) Selected() (Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// Move shifts the cursor by delta, clamped to the item range.
func (l *Level) Move(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

// First moves the cursor to the first item.
func (l *Level) First() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// Last moves the cursor to the last item.
func (l *Level) Last() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveHalfViewport shifts the cursor by half the viewport height in the
// given direction (negative is up).
func (l *Level) MoveHalfViewport(direction, viewportHeight int) bool {
	step := viewportHeight / 2
	if step < 1 {
		step = 1
	}
	if direction < 0 {
		step = -step
	}
	return l.Move(step)
}

// SetFilter replaces the filter query. Display text matching is a
// case-sensitive substring test. On commit of a non-empty query the
// cursor moves to the first match; clearing restores the full list and
// the pre-filter cursor when it is still valid.
func (l *Level) SetFilter(query string) {
	prev := strings.TrimSpace(l.Filter)
	next := strings.TrimSpace(query)
	l.Filter = query
	if next != "" && prev == "" {
		l.LastCursor = l.Cursor
	}
	l.applyFilter()
	if next != "" {
		l.Cursor = 0
	} else if prev != "" {
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		} else {
			l.Cursor = 0
		}
		l.LastCursor = -1
	}
}

// ClearFilter drops the filter, restoring the full entry list.
func (l *Level) ClearFilter() {
	l.SetFilter("")
}

// JumpForward moves the cursor to the next visible entry, wrapping past
// the end. With an active filter the visible entries are exactly the
// matches, so the jump cycles through them.
func (l *Level) JumpForward() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	l.Cursor = (l.Cursor + 1) % n
	return true
}

// JumpBack is the exact inverse of JumpForward.
func (l *Level) JumpBack() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	l.Cursor = (l.Cursor - 1 + n) % n
	return true
}

// EnsureVisible adjusts the viewport offset so the cursor stays inside a
// window of maxVisible rows.
func (l *Level) EnsureVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
	}
}

func (l *Level) applyFilter() {
	query := strings.TrimSpace(l.Filter)
	if query == "" {
		l.Items = cloneEntries(l.Full)
	} else {
		matched := make([]Entry, 0, len(l.Full))
		for _, entry := range l.Full {
			if strings.Contains(entry.Display(), query) {
				matched = append(matched, entry)
			}
		}
		l.Items = matched
	}
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}
