// Package browse implements the hierarchical navigation stack: levels of
// fetched entries with a selection cursor, viewport window, incremental
// filter and a prefetch slot. The stack never performs I/O; screens fetch
// and feed it.
package browse

import "github.com/arpent/strum/internal/mpd"

// EntryKind discriminates the entry union.
type EntryKind int

const (
	// EntryContainer is a drillable grouping: an album, artist,
	// directory or playlist name.
	EntryContainer EntryKind = iota
	// EntryLeaf is a playable item carrying a song record.
	EntryLeaf
)

// Entry is one row of a navigation level.
type Entry struct {
	Kind EntryKind
	Name string
	Song mpd.Song
}

// Container returns a drillable entry.
func Container(name string) Entry {
	return Entry{Kind: EntryContainer, Name: name}
}

// Leaf returns a playable entry wrapping a song record.
func Leaf(song mpd.Song) Entry {
	return Entry{Kind: EntryLeaf, Name: song.DisplayName(), Song: song}
}

// Display returns the text the renderer and the filter operate on.
func (e Entry) Display() string {
	return e.Name
}

func cloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
