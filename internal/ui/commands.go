package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/logging"
	"github.com/arpent/strum/internal/logging/events"
	"github.com/arpent/strum/internal/mpd"
	"github.com/arpent/strum/internal/screens"
)

// previewMinInterval spaces out preview prefetches while the cursor is
// held down.
const previewMinInterval = 100 * time.Millisecond

type statusTickMsg struct{}

type statusMsg struct {
	gen     uint64
	status  mpd.Status
	song    mpd.Song
	hasSong bool
	err     error
}

type previewLoadedMsg struct {
	scope   keymap.Scope
	seq     uint64
	entries []browse.Entry
	err     error
}

// fetchStatusCmd polls status and the current song off the input loop.
// The client's internal lock keeps it interleaved with user commands.
func (m *Model) fetchStatusCmd() tea.Cmd {
	client := m.client
	m.polling = true
	m.pollGen++
	gen := m.pollGen
	return func() tea.Msg {
		status, err := client.Status()
		if err != nil {
			return statusMsg{gen: gen, err: err}
		}
		song, ok, err := client.CurrentSong()
		if err != nil {
			return statusMsg{gen: gen, status: status, err: err}
		}
		return statusMsg{gen: gen, status: status, song: song, hasSong: ok}
	}
}

func (m *Model) statusTick() tea.Cmd {
	interval := m.cfg.StatusUpdateInterval
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return statusTickMsg{} })
}

func (m *Model) handleStatusTickMsg(tea.Msg) tea.Cmd {
	return m.fetchStatusCmd()
}

func (m *Model) handleStatusMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(statusMsg)
	if !ok {
		return nil
	}
	if update.gen != m.pollGen {
		// A newer fetch is already in flight; dropping this one keeps
		// a single tick loop alive.
		return nil
	}
	if update.err != nil {
		logging.Error(update.err)
		if isTransport(update.err) {
			// Stop polling until a user action reconnects.
			m.polling = false
			m.errMsg = "connection lost: " + update.err.Error()
			return nil
		}
		return m.statusTick()
	}
	m.status = update.status
	m.current = update.song
	m.hasCurrent = update.hasSong
	if logs, isLogs := m.screen().(*screens.Logs); isLogs && logs.Stale() {
		logs.Load(nil)
		m.syncViewport()
	}
	return m.statusTick()
}

func (m *Model) schedulePreview() tea.Cmd {
	scr := m.screen()
	stack := scr.Stack()
	seq := stack.IssuePreview()
	fetch, ok := scr.PreviewCmd()
	if !ok {
		stack.ApplyPreview(seq, nil)
		return nil
	}
	client := m.client
	scope := scr.Scope()
	gate := m.previewGate
	return func() tea.Msg {
		gate.wait()
		entries, err := fetch(client)
		return previewLoadedMsg{scope: scope, seq: seq, entries: entries, err: err}
	}
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	scr := m.screenByScope(update.scope)
	if scr == nil {
		return nil
	}
	if update.err != nil {
		// Prefetch failures are background noise, not status-bar
		// material.
		logging.Error(update.err)
		return nil
	}
	applied := scr.Stack().ApplyPreview(update.seq, update.entries)
	events.UI.Preview(scr.Title(), update.seq, applied)
	return nil
}

// withClient runs a server-touching operation, reconnecting once when
// the connection was lost.
func (m *Model) withClient(op func() (string, error)) (string, error, tea.Cmd) {
	info, err := op()
	if err == nil || !isTransport(err) {
		return info, err, nil
	}
	if rerr := m.client.Reconnect(); rerr != nil {
		return "", errors.Join(err, rerr), nil
	}
	events.Proto.Connect(m.cfg.Address, m.client.Version())
	info, err = op()
	var resume tea.Cmd
	if !m.polling {
		resume = m.fetchStatusCmd()
	}
	return info, err, resume
}

func isTransport(err error) bool {
	var transport *mpd.TransportError
	return errors.Is(err, mpd.ErrNotConnected) || errors.As(err, &transport)
}
