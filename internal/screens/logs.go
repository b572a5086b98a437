package screens

import (
	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/logging"
	"github.com/arpent/strum/internal/mpd"
)

// Logs shows the in-memory log ring. It never talks to the daemon.
type Logs struct {
	stack *browse.Stack
	seq   uint64
}

func NewLogs() *Logs {
	return &Logs{stack: browse.NewStack(nil)}
}

func (s *Logs) Scope() keymap.Scope  { return keymap.ScopeLogs }
func (s *Logs) Title() string        { return "Logs" }
func (s *Logs) Stack() *browse.Stack { return s.stack }

func (s *Logs) Load(*mpd.Client) error {
	s.reload()
	return nil
}

// Stale reports whether the ring has grown since the last reload.
func (s *Logs) Stale() bool {
	return logging.Seq() != s.seq
}

func (s *Logs) reload() {
	records := logging.Records()
	entries := make([]browse.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, browse.Container(record.Display()))
	}
	s.seq = logging.Seq()
	s.stack.ReplaceTop(entries)
}

func (s *Logs) Descend(*mpd.Client) (string, error) {
	return "", nil
}

func (s *Logs) Ascend() bool { return false }

func (s *Logs) Apply(_ *mpd.Client, action keymap.Action) (string, bool, error) {
	if action != keymap.ActionClearLogs {
		return "", false, nil
	}
	logging.ClearRecords()
	s.reload()
	return "Logs cleared", true, nil
}

func (s *Logs) PreviewCmd() (PreviewFetch, bool) { return nil, false }
