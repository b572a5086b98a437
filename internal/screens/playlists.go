package screens

import (
	"fmt"

	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/mpd"
)

type playlistsPos int

const (
	playlistsAtPlaylist playlistsPos = iota
	playlistsAtSong
)

// Playlists browses stored playlists. Descending lists a playlist's
// songs; descending on a song adds that file. Confirm on a playlist
// loads the whole playlist into the queue.
type Playlists struct {
	stack    *browse.Stack
	pos      playlistsPos
	playlist string
}

func NewPlaylists() *Playlists {
	return &Playlists{stack: browse.NewStack(nil)}
}

func (s *Playlists) Scope() keymap.Scope  { return keymap.ScopePlaylists }
func (s *Playlists) Title() string        { return "Playlists" }
func (s *Playlists) Stack() *browse.Stack { return s.stack }

func (s *Playlists) Load(c *mpd.Client) error {
	switch s.pos {
	case playlistsAtPlaylist:
		names, err := c.ListPlaylists()
		if err != nil {
			return fmt.Errorf("list playlists: %w", err)
		}
		s.stack.ReplaceTop(containerEntries(names))
	case playlistsAtSong:
		songs, err := c.PlaylistContents(s.playlist)
		if err != nil {
			return fmt.Errorf("list playlist %q: %w", s.playlist, err)
		}
		s.stack.ReplaceTop(leafEntries(songs))
	}
	return nil
}

func (s *Playlists) Descend(c *mpd.Client) (string, error) {
	entry, ok := s.stack.Selected()
	if !ok {
		return "", ErrNothingSelected
	}
	switch s.pos {
	case playlistsAtPlaylist:
		songs, err := c.PlaylistContents(entry.Name)
		if err != nil {
			return "", fmt.Errorf("list playlist %q: %w", entry.Name, err)
		}
		s.playlist = entry.Name
		s.pos = playlistsAtSong
		s.stack.Push(leafEntries(songs))
		return "", nil
	default:
		if err := c.Add(entry.Song.File); err != nil {
			return "", fmt.Errorf("add %q: %w", entry.Display(), err)
		}
		return fmt.Sprintf("Added %q to the queue", entry.Display()), nil
	}
}

func (s *Playlists) Ascend() bool {
	if !s.stack.Pop() {
		return false
	}
	s.pos = playlistsAtPlaylist
	s.playlist = ""
	return true
}

func (s *Playlists) Apply(c *mpd.Client, action keymap.Action) (string, bool, error) {
	if action != keymap.ActionConfirm || s.pos != playlistsAtPlaylist {
		return "", false, nil
	}
	entry, ok := s.stack.Selected()
	if !ok {
		return "", true, ErrNothingSelected
	}
	if err := c.Load(entry.Name); err != nil {
		return "", true, fmt.Errorf("load playlist %q: %w", entry.Name, err)
	}
	return fmt.Sprintf("Loaded playlist %q", entry.Name), true, nil
}

func (s *Playlists) PreviewCmd() (PreviewFetch, bool) {
	if s.pos != playlistsAtPlaylist {
		return nil, false
	}
	entry, ok := s.stack.Selected()
	if !ok {
		return nil, false
	}
	name := entry.Name
	return func(c *mpd.Client) ([]browse.Entry, error) {
		songs, err := c.PlaylistContents(name)
		if err != nil {
			return nil, err
		}
		return leafEntries(songs), nil
	}, true
}
