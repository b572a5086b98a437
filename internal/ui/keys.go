package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arpent/strum/internal/browse"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/logging/events"
	"github.com/arpent/strum/internal/screens"
)

const seekStepSeconds = 5

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeFilter:
		return m.handleFilterKey(keyMsg)
	case ModePrompt:
		return m.handlePromptKey(keyMsg)
	case ModeHelp:
		return m.handleHelpKey(keyMsg)
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	key := keymap.FromKeyMsg(keyMsg)
	action, resolved := m.resolver.Resolve(m.screen().Scope(), key)
	if !resolved {
		return nil
	}
	events.UI.Action(m.screen().Title(), action.String())
	return m.dispatch(action)
}

func (m *Model) dispatch(action keymap.Action) tea.Cmd {
	switch action {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionNextTab:
		return m.switchTab(1)
	case keymap.ActionPreviousTab:
		return m.switchTab(-1)
	case keymap.ActionShowHelp:
		m.mode = ModeHelp
		m.helpQuery.SetValue("")
		return m.helpQuery.Focus()

	case keymap.ActionTogglePause:
		return m.playback(m.client.TogglePause)
	case keymap.ActionStop:
		return m.playback(m.client.Stop)
	case keymap.ActionNextTrack:
		return m.playback(m.client.Next)
	case keymap.ActionPreviousTrack:
		return m.playback(m.client.Previous)
	case keymap.ActionSeekForward:
		return m.playback(func() error { return m.client.SeekBy(seekStepSeconds) })
	case keymap.ActionSeekBack:
		return m.playback(func() error { return m.client.SeekBy(-seekStepSeconds) })
	case keymap.ActionVolumeUp:
		return m.adjustVolume(m.cfg.VolumeStep)
	case keymap.ActionVolumeDown:
		return m.adjustVolume(-m.cfg.VolumeStep)
	case keymap.ActionToggleRepeat:
		return m.playback(func() error { return m.client.Repeat(!m.status.Repeat) })
	case keymap.ActionToggleRandom:
		return m.playback(func() error { return m.client.Random(!m.status.Random) })
	case keymap.ActionToggleSingle:
		return m.playback(func() error { return m.client.Single(!m.status.Single) })
	case keymap.ActionToggleConsume:
		return m.playback(func() error { return m.client.Consume(!m.status.Consume) })

	case keymap.ActionUp:
		return m.navigate(func(l *browse.Level) { l.Move(-1) })
	case keymap.ActionDown:
		return m.navigate(func(l *browse.Level) { l.Move(1) })
	case keymap.ActionUpHalf:
		return m.navigate(func(l *browse.Level) { l.MoveHalfViewport(-1, m.listHeight()) })
	case keymap.ActionDownHalf:
		return m.navigate(func(l *browse.Level) { l.MoveHalfViewport(1, m.listHeight()) })
	case keymap.ActionTop:
		return m.navigate(func(l *browse.Level) { l.First() })
	case keymap.ActionBottom:
		return m.navigate(func(l *browse.Level) { l.Last() })
	case keymap.ActionDescend:
		return m.descend()
	case keymap.ActionAscend:
		return m.ascend()
	case keymap.ActionEnterSearch:
		return m.enterFilter()
	case keymap.ActionNextResult:
		return m.jump(true)
	case keymap.ActionPreviousResult:
		return m.jump(false)
	case keymap.ActionConfirm:
		return m.confirm()

	case keymap.ActionSaveQueue:
		return m.enterSavePrompt()
	case keymap.ActionDelete, keymap.ActionDeleteAll, keymap.ActionClearLogs:
		return m.applyScreenAction(action)
	}
	return nil
}

func (m *Model) switchTab(delta int) tea.Cmd {
	n := len(m.screens)
	m.active = (m.active + delta + n) % n
	m.errMsg = ""
	m.infoMsg = ""
	events.UI.ScreenEnter(m.screen().Title())
	_, err, resume := m.withClient(func() (string, error) {
		return "", m.screen().Load(m.client)
	})
	if err != nil {
		m.setError(err)
	}
	m.syncViewport()
	return batch(resume, m.schedulePreview())
}

func (m *Model) navigate(move func(*browse.Level)) tea.Cmd {
	top := m.screen().Stack().Top()
	move(top)
	m.syncViewport()
	events.UI.Cursor(m.screen().Title(), top.Cursor)
	return m.schedulePreview()
}

func (m *Model) jump(forward bool) tea.Cmd {
	top := m.screen().Stack().Top()
	if forward {
		top.JumpForward()
	} else {
		top.JumpBack()
	}
	m.syncViewport()
	events.Filter.Jump(m.screen().Title(), forward, top.Cursor)
	return m.schedulePreview()
}

func (m *Model) descend() tea.Cmd {
	scr := m.screen()
	var selected string
	if entry, ok := scr.Stack().Selected(); ok {
		selected = entry.Display()
	}
	info, err, resume := m.withClient(func() (string, error) {
		return scr.Descend(m.client)
	})
	switch {
	case err != nil:
		m.setError(err)
	case info != "":
		m.setInfo(info)
	default:
		m.errMsg = ""
	}
	events.UI.Descend(scr.Title(), selected, scr.Stack().Depth())
	m.syncViewport()
	return batch(resume, m.schedulePreview())
}

func (m *Model) ascend() tea.Cmd {
	scr := m.screen()
	if !scr.Ascend() {
		return nil
	}
	events.UI.Ascend(scr.Title(), scr.Stack().Depth())
	m.errMsg = ""
	m.syncViewport()
	return m.schedulePreview()
}

func (m *Model) confirm() tea.Cmd {
	cmd, handled := m.tryScreenAction(keymap.ActionConfirm)
	if handled {
		return cmd
	}
	// Screens without their own confirm treat it as descend.
	return m.descend()
}

func (m *Model) applyScreenAction(action keymap.Action) tea.Cmd {
	cmd, _ := m.tryScreenAction(action)
	return cmd
}

func (m *Model) tryScreenAction(action keymap.Action) (tea.Cmd, bool) {
	scr := m.screen()
	var handled bool
	info, err, resume := m.withClient(func() (string, error) {
		i, h, e := scr.Apply(m.client, action)
		handled = h
		return i, e
	})
	if !handled {
		return resume, false
	}
	switch {
	case err != nil:
		m.setError(err)
	case info != "":
		m.setInfo(info)
	}
	m.syncViewport()
	return batch(resume, m.schedulePreview()), true
}

func (m *Model) playback(op func() error) tea.Cmd {
	_, err, resume := m.withClient(func() (string, error) {
		return "", op()
	})
	if err != nil {
		m.setError(err)
		return resume
	}
	m.errMsg = ""
	return batch(resume, m.fetchStatusCmd())
}

func (m *Model) adjustVolume(delta int) tea.Cmd {
	if m.status.Volume < 0 {
		m.setInfo("Volume unknown")
		return nil
	}
	target := m.status.Volume + delta
	return m.playback(func() error { return m.client.SetVolume(target) })
}

func (m *Model) enterFilter() tea.Cmd {
	top := m.screen().Stack().Top()
	m.mode = ModeFilter
	m.input.Prompt = "/"
	m.input.SetValue(top.Filter)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) handleFilterKey(keyMsg tea.KeyMsg) tea.Cmd {
	top := m.screen().Stack().Top()
	title := m.screen().Title()
	switch keyMsg.Type {
	case tea.KeyEscape:
		m.mode = ModeBrowse
		m.input.Blur()
		top.ClearFilter()
		events.Filter.Cleared(title)
		m.syncViewport()
		return m.schedulePreview()
	case tea.KeyEnter:
		m.mode = ModeBrowse
		m.input.Blur()
		events.Filter.Commit(title, top.Filter)
		return m.schedulePreview()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	top.SetFilter(m.input.Value())
	events.Filter.Edit(title, m.input.Value())
	m.syncViewport()
	return batch(cmd, m.schedulePreview())
}

func (m *Model) enterSavePrompt() tea.Cmd {
	if _, isQueue := m.screen().(*screens.Queue); !isQueue {
		return nil
	}
	m.mode = ModePrompt
	m.input.Prompt = "save as: "
	m.input.SetValue("")
	return m.input.Focus()
}

func (m *Model) handlePromptKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEscape:
		m.mode = ModeBrowse
		m.input.Blur()
		return nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		m.mode = ModeBrowse
		m.input.Blur()
		if name == "" {
			return nil
		}
		queue, isQueue := m.screen().(*screens.Queue)
		if !isQueue {
			return nil
		}
		info, err, resume := m.withClient(func() (string, error) {
			return queue.SaveAs(m.client, name)
		})
		if err != nil {
			m.setError(err)
		} else {
			m.setInfo(info)
		}
		return resume
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return cmd
}

func (m *Model) handleHelpKey(keyMsg tea.KeyMsg) tea.Cmd {
	if keyMsg.Type == tea.KeyEscape {
		m.mode = ModeBrowse
		m.helpQuery.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.helpQuery, cmd = m.helpQuery.Update(keyMsg)
	return cmd
}

func batch(cmds ...tea.Cmd) tea.Cmd {
	live := cmds[:0]
	for _, cmd := range cmds {
		if cmd != nil {
			live = append(live, cmd)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	default:
		return tea.Batch(live...)
	}
}
