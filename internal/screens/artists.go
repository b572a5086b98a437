package screens

import (
	"fmt"

	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/mpd"
)

type artistsPos int

const (
	artistsAtArtist artistsPos = iota
	artistsAtAlbum
	artistsAtSong
)

// Artists browses Artist → Album → Song.
type Artists struct {
	stack  *browse.Stack
	pos    artistsPos
	artist string
	album  string
}

func NewArtists() *Artists {
	return &Artists{stack: browse.NewStack(nil)}
}

func (s *Artists) Scope() keymap.Scope  { return keymap.ScopeArtists }
func (s *Artists) Title() string        { return "Artists" }
func (s *Artists) Stack() *browse.Stack { return s.stack }

func (s *Artists) Load(c *mpd.Client) error {
	switch s.pos {
	case artistsAtArtist:
		artists, err := c.ListTags("artist")
		if err != nil {
			return fmt.Errorf("list artists: %w", err)
		}
		s.stack.ReplaceTop(containerEntries(artists))
	case artistsAtAlbum:
		albums, err := c.ListTags("album", mpd.Filter{Tag: "artist", Value: s.artist})
		if err != nil {
			return fmt.Errorf("list albums of %q: %w", s.artist, err)
		}
		s.stack.ReplaceTop(containerEntries(albums))
	case artistsAtSong:
		songs, err := c.Find(
			mpd.Filter{Tag: "artist", Value: s.artist},
			mpd.Filter{Tag: "album", Value: s.album},
		)
		if err != nil {
			return fmt.Errorf("list songs of %q: %w", s.album, err)
		}
		s.stack.ReplaceTop(leafEntries(songs))
	}
	return nil
}

func (s *Artists) Descend(c *mpd.Client) (string, error) {
	entry, ok := s.stack.Selected()
	if !ok {
		return "", ErrNothingSelected
	}
	switch s.pos {
	case artistsAtArtist:
		albums, err := c.ListTags("album", mpd.Filter{Tag: "artist", Value: entry.Name})
		if err != nil {
			return "", fmt.Errorf("list albums of %q: %w", entry.Name, err)
		}
		s.artist = entry.Name
		s.pos = artistsAtAlbum
		s.stack.Push(containerEntries(albums))
		return "", nil
	case artistsAtAlbum:
		songs, err := c.Find(
			mpd.Filter{Tag: "artist", Value: s.artist},
			mpd.Filter{Tag: "album", Value: entry.Name},
		)
		if err != nil {
			return "", fmt.Errorf("list songs of %q: %w", entry.Name, err)
		}
		s.album = entry.Name
		s.pos = artistsAtSong
		s.stack.Push(leafEntries(songs))
		return "", nil
	default:
		err := c.FindAdd(
			mpd.Filter{Tag: "artist", Value: s.artist},
			mpd.Filter{Tag: "album", Value: s.album},
			mpd.Filter{Tag: "title", Value: entry.Song.Title},
		)
		if err != nil {
			return "", fmt.Errorf("add %q: %w", entry.Display(), err)
		}
		return fmt.Sprintf("Added %q to the queue", entry.Display()), nil
	}
}

func (s *Artists) Ascend() bool {
	if !s.stack.Pop() {
		return false
	}
	switch s.pos {
	case artistsAtSong:
		s.pos = artistsAtAlbum
		s.album = ""
	case artistsAtAlbum:
		s.pos = artistsAtArtist
		s.artist = ""
	}
	return true
}

func (s *Artists) Apply(*mpd.Client, keymap.Action) (string, bool, error) {
	return "", false, nil
}

func (s *Artists) PreviewCmd() (PreviewFetch, bool) {
	entry, ok := s.stack.Selected()
	if !ok {
		return nil, false
	}
	switch s.pos {
	case artistsAtArtist:
		artist := entry.Name
		return func(c *mpd.Client) ([]browse.Entry, error) {
			albums, err := c.ListTags("album", mpd.Filter{Tag: "artist", Value: artist})
			if err != nil {
				return nil, err
			}
			return containerEntries(albums), nil
		}, true
	case artistsAtAlbum:
		artist, album := s.artist, entry.Name
		return func(c *mpd.Client) ([]browse.Entry, error) {
			songs, err := c.Find(
				mpd.Filter{Tag: "artist", Value: artist},
				mpd.Filter{Tag: "album", Value: album},
			)
			if err != nil {
				return nil, err
			}
			return leafEntries(songs), nil
		}, true
	default:
		return nil, false
	}
}
