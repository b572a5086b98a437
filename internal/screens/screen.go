// Package screens holds one orchestrator per content domain. A screen
// composes a navigation stack with its fetch logic and a position state
// machine; the UI layer routes resolved key actions into it.
package screens

import (
	"errors"

	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/mpd"
)

// ErrNothingSelected is returned for actions that need a selection when
// the current level is empty.
var ErrNothingSelected = errors.New("nothing selected")

// PreviewFetch retrieves the content a descent from the captured
// selection would show. It runs off the input loop, so it must not touch
// screen state.
type PreviewFetch func(c *mpd.Client) ([]browse.Entry, error)

// Screen is one tab of the client.
type Screen interface {
	Scope() keymap.Scope
	Title() string
	Stack() *browse.Stack

	// Load (re)fetches the current level's entries.
	Load(c *mpd.Client) error
	// Descend drills into the selection, or performs the terminal
	// action at the deepest position. It returns an optional status
	// message.
	Descend(c *mpd.Client) (string, error)
	// Ascend pops one level, reporting false at the root.
	Ascend() bool
	// Apply handles a screen-specific action. handled is false when the
	// action does not belong to this screen.
	Apply(c *mpd.Client, action keymap.Action) (msg string, handled bool, err error)
	// PreviewCmd captures the current selection into a fetch for the
	// prefetch slot; ok is false when there is nothing to prefetch.
	PreviewCmd() (fetch PreviewFetch, ok bool)
}

func containerEntries(names []string) []browse.Entry {
	entries := make([]browse.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, browse.Container(name))
	}
	return entries
}

func leafEntries(songs []mpd.Song) []browse.Entry {
	entries := make([]browse.Entry, 0, len(songs))
	for _, song := range songs {
		entries = append(entries, browse.Leaf(song))
	}
	return entries
}
