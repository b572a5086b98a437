// Package ui is the Bubble Tea front end: one model hosting the screen
// tabs, the key dispatch, the filter/prompt input modes, the status bar
// and the help overlay.
package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arpent/strum/internal/config"
	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/logging"
	"github.com/arpent/strum/internal/logging/events"
	"github.com/arpent/strum/internal/mpd"
	"github.com/arpent/strum/internal/screens"
	"github.com/arpent/strum/internal/theme"
)

var styles = theme.Default()

// Mode selects which input surface owns keypresses.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeFilter
	ModePrompt
	ModeHelp
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements tea.Model for the whole client.
type Model struct {
	client   *mpd.Client
	cfg      config.Config
	resolver *keymap.Resolver
	screens  []screens.Screen
	active   int

	status     mpd.Status
	current    mpd.Song
	hasCurrent bool
	polling    bool
	pollGen    uint64

	mode      Mode
	input     textinput.Model
	helpQuery textinput.Model

	previewGate *throttle

	errMsg  string
	infoMsg string

	width  int
	height int

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI over an established connection. The tab order
// follows keymap.ScreenScopes.
func NewModel(client *mpd.Client, cfg config.Config) *Model {
	input := textinput.New()
	input.Prompt = "/"
	if styles.FilterPrompt != nil {
		input.PromptStyle = *styles.FilterPrompt
	}
	helpQuery := textinput.New()
	helpQuery.Prompt = "search: "

	m := &Model{
		client:   client,
		cfg:      cfg,
		resolver: keymap.NewResolver(cfg.Bindings),
		screens: []screens.Screen{
			screens.NewQueue(),
			screens.NewAlbums(),
			screens.NewArtists(),
			screens.NewDirectories(),
			screens.NewPlaylists(),
			screens.NewLogs(),
		},
		input:       input,
		helpQuery:   helpQuery,
		previewGate: newThrottle(previewMinInterval),
		status:      mpd.Status{Volume: -1, SongPos: -1},
	}
	m.registerHandlers()
	return m
}

// Init loads the first screen and kicks off the status poll.
func (m *Model) Init() tea.Cmd {
	if err := m.screen().Load(m.client); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
	events.UI.ScreenEnter(m.screen().Title())
	cmds := []tea.Cmd{m.fetchStatusCmd()}
	if cmd := m.schedulePreview(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(statusTickMsg{}):     m.handleStatusTickMsg,
		reflect.TypeOf(statusMsg{}):         m.handleStatusMsg,
		reflect.TypeOf(previewLoadedMsg{}):  m.handlePreviewLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.syncViewport()
	return nil
}

func (m *Model) screen() screens.Screen {
	return m.screens[m.active]
}

func (m *Model) screenByScope(scope keymap.Scope) screens.Screen {
	for _, s := range m.screens {
		if s.Scope() == scope {
			return s
		}
	}
	return nil
}

func (m *Model) syncViewport() {
	m.screen().Stack().Top().EnsureVisible(m.listHeight())
}

// listHeight is the number of entry rows that fit between the tab bar
// and the status area.
func (m *Model) listHeight() int {
	chrome := 4 // tabs, header, status bar, message line
	if h := m.height - chrome; h > 0 {
		return h
	}
	return 10
}

func (m *Model) setInfo(info string) {
	m.infoMsg = info
	m.errMsg = ""
}

func (m *Model) setError(err error) {
	m.errMsg = err.Error()
	m.infoMsg = ""
	logging.Error(err)
}
