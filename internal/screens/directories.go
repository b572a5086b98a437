package screens

import (
	"fmt"
	"strings"

	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/mpd"
)

// Directories walks the library's filesystem tree via lsinfo. Containers
// descend into subdirectories; descending on a song adds its file to the
// queue.
type Directories struct {
	stack *browse.Stack
	path  []string
}

func NewDirectories() *Directories {
	return &Directories{stack: browse.NewStack(nil)}
}

func (s *Directories) Scope() keymap.Scope  { return keymap.ScopeDirectories }
func (s *Directories) Title() string        { return "Directories" }
func (s *Directories) Stack() *browse.Stack { return s.stack }

func (s *Directories) currentPath() string {
	return strings.Join(s.path, "/")
}

func (s *Directories) childPath(name string) string {
	if len(s.path) == 0 {
		return name
	}
	return s.currentPath() + "/" + name
}

func (s *Directories) Load(c *mpd.Client) error {
	entries, err := fetchDirectory(c, s.currentPath())
	if err != nil {
		return err
	}
	s.stack.ReplaceTop(entries)
	return nil
}

func (s *Directories) Descend(c *mpd.Client) (string, error) {
	entry, ok := s.stack.Selected()
	if !ok {
		return "", ErrNothingSelected
	}
	if entry.Kind == browse.EntryLeaf {
		if err := c.Add(entry.Song.File); err != nil {
			return "", fmt.Errorf("add %q: %w", entry.Display(), err)
		}
		return fmt.Sprintf("Added %q to the queue", entry.Display()), nil
	}
	child := s.childPath(entry.Name)
	entries, err := fetchDirectory(c, child)
	if err != nil {
		return "", err
	}
	s.path = append(s.path, entry.Name)
	s.stack.Push(entries)
	return "", nil
}

func (s *Directories) Ascend() bool {
	if !s.stack.Pop() {
		return false
	}
	s.path = s.path[:len(s.path)-1]
	return true
}

func (s *Directories) Apply(*mpd.Client, keymap.Action) (string, bool, error) {
	return "", false, nil
}

func (s *Directories) PreviewCmd() (PreviewFetch, bool) {
	entry, ok := s.stack.Selected()
	if !ok || entry.Kind != browse.EntryContainer {
		return nil, false
	}
	child := s.childPath(entry.Name)
	return func(c *mpd.Client) ([]browse.Entry, error) {
		return fetchDirectory(c, child)
	}, true
}

func fetchDirectory(c *mpd.Client, path string) ([]browse.Entry, error) {
	listing, err := c.LsInfo(path)
	if err != nil {
		if path == "" {
			return nil, fmt.Errorf("list library root: %w", err)
		}
		return nil, fmt.Errorf("list %q: %w", path, err)
	}
	entries := make([]browse.Entry, 0, len(listing))
	for _, item := range listing {
		switch {
		case item.IsDir():
			entries = append(entries, browse.Container(baseName(item.Dir)))
		case item.Playlist != "":
			// Stored playlists show up in the root listing; the
			// playlists screen owns them.
		default:
			entries = append(entries, browse.Leaf(item.Song))
		}
	}
	return entries, nil
}

func baseName(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
