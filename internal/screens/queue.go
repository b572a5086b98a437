package screens

import (
	"fmt"

	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/mpd"
)

// Queue is the flat play-queue screen. Confirm plays the selected
// position; delete removes it.
type Queue struct {
	stack *browse.Stack
}

func NewQueue() *Queue {
	return &Queue{stack: browse.NewStack(nil)}
}

func (s *Queue) Scope() keymap.Scope  { return keymap.ScopeQueue }
func (s *Queue) Title() string        { return "Queue" }
func (s *Queue) Stack() *browse.Stack { return s.stack }

func (s *Queue) Load(c *mpd.Client) error {
	songs, err := c.PlaylistInfo()
	if err != nil {
		return fmt.Errorf("list queue: %w", err)
	}
	s.stack.ReplaceTop(leafEntries(songs))
	return nil
}

func (s *Queue) Descend(c *mpd.Client) (string, error) {
	entry, ok := s.stack.Selected()
	if !ok {
		return "", ErrNothingSelected
	}
	if err := c.Play(entry.Song.Pos); err != nil {
		return "", fmt.Errorf("play %q: %w", entry.Display(), err)
	}
	return fmt.Sprintf("Playing %q", entry.Display()), nil
}

func (s *Queue) Ascend() bool { return false }

func (s *Queue) Apply(c *mpd.Client, action keymap.Action) (string, bool, error) {
	switch action {
	case keymap.ActionConfirm:
		msg, err := s.Descend(c)
		return msg, true, err
	case keymap.ActionDelete:
		entry, ok := s.stack.Selected()
		if !ok {
			return "", true, ErrNothingSelected
		}
		if err := c.Delete(entry.Song.Pos); err != nil {
			return "", true, fmt.Errorf("delete %q: %w", entry.Display(), err)
		}
		if err := s.Load(c); err != nil {
			return "", true, err
		}
		return fmt.Sprintf("Removed %q", entry.Display()), true, nil
	case keymap.ActionDeleteAll:
		if err := c.Clear(); err != nil {
			return "", true, fmt.Errorf("clear queue: %w", err)
		}
		if err := s.Load(c); err != nil {
			return "", true, err
		}
		return "Queue cleared", true, nil
	default:
		return "", false, nil
	}
}

// SaveAs stores the queue as a named playlist. The UI collects the name
// through its prompt before calling this.
func (s *Queue) SaveAs(c *mpd.Client, name string) (string, error) {
	if err := c.Save(name); err != nil {
		return "", fmt.Errorf("save queue as %q: %w", name, err)
	}
	return fmt.Sprintf("Queue saved as %q", name), nil
}

func (s *Queue) PreviewCmd() (PreviewFetch, bool) { return nil, false }
