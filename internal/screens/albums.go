package screens

import (
	"fmt"

	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/mpd"
)

type albumsPos int

const (
	albumsAtAlbum albumsPos = iota
	albumsAtSong
)

// Albums browses Album → Song. Descending on a song appends it to the
// queue.
type Albums struct {
	stack *browse.Stack
	pos   albumsPos
	album string
}

func NewAlbums() *Albums {
	return &Albums{stack: browse.NewStack(nil)}
}

func (s *Albums) Scope() keymap.Scope  { return keymap.ScopeAlbums }
func (s *Albums) Title() string        { return "Albums" }
func (s *Albums) Stack() *browse.Stack { return s.stack }

func (s *Albums) Load(c *mpd.Client) error {
	switch s.pos {
	case albumsAtAlbum:
		albums, err := c.ListTags("album")
		if err != nil {
			return fmt.Errorf("list albums: %w", err)
		}
		s.stack.ReplaceTop(containerEntries(albums))
	case albumsAtSong:
		songs, err := c.Find(mpd.Filter{Tag: "album", Value: s.album})
		if err != nil {
			return fmt.Errorf("list songs of %q: %w", s.album, err)
		}
		s.stack.ReplaceTop(leafEntries(songs))
	}
	return nil
}

func (s *Albums) Descend(c *mpd.Client) (string, error) {
	entry, ok := s.stack.Selected()
	if !ok {
		return "", ErrNothingSelected
	}
	switch s.pos {
	case albumsAtAlbum:
		songs, err := c.Find(mpd.Filter{Tag: "album", Value: entry.Name})
		if err != nil {
			return "", fmt.Errorf("list songs of %q: %w", entry.Name, err)
		}
		s.album = entry.Name
		s.pos = albumsAtSong
		s.stack.Push(leafEntries(songs))
		return "", nil
	default:
		err := c.FindAdd(
			mpd.Filter{Tag: "album", Value: s.album},
			mpd.Filter{Tag: "title", Value: entry.Song.Title},
		)
		if err != nil {
			return "", fmt.Errorf("add %q: %w", entry.Display(), err)
		}
		return fmt.Sprintf("Added %q to the queue", entry.Display()), nil
	}
}

func (s *Albums) Ascend() bool {
	if !s.stack.Pop() {
		return false
	}
	s.pos = albumsAtAlbum
	s.album = ""
	return true
}

func (s *Albums) Apply(*mpd.Client, keymap.Action) (string, bool, error) {
	return "", false, nil
}

func (s *Albums) PreviewCmd() (PreviewFetch, bool) {
	if s.pos != albumsAtAlbum {
		return nil, false
	}
	entry, ok := s.stack.Selected()
	if !ok {
		return nil, false
	}
	album := entry.Name
	return func(c *mpd.Client) ([]browse.Entry, error) {
		songs, err := c.Find(mpd.Filter{Tag: "album", Value: album})
		if err != nil {
			return nil, err
		}
		return leafEntries(songs), nil
	}, true
}
