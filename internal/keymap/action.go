package keymap

import "fmt"

// Scope is a keybinding namespace: the shared global and navigation tables
// plus one table per screen.
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopeNavigation
	ScopeAlbums
	ScopeArtists
	ScopeDirectories
	ScopePlaylists
	ScopeQueue
	ScopeLogs
)

var scopeNames = map[Scope]string{
	ScopeGlobal:      "global",
	ScopeNavigation:  "navigation",
	ScopeAlbums:      "albums",
	ScopeArtists:     "artists",
	ScopeDirectories: "directories",
	ScopePlaylists:   "playlists",
	ScopeQueue:       "queue",
	ScopeLogs:        "logs",
}

func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("scope(%d)", int(s))
}

// ScreenScopes lists the per-screen scopes in tab order.
func ScreenScopes() []Scope {
	return []Scope{ScopeQueue, ScopeAlbums, ScopeArtists, ScopeDirectories, ScopePlaylists, ScopeLogs}
}

// Action is a semantic operation a key can trigger.
type Action int

const (
	ActionNone Action = iota

	// Global scope.
	ActionQuit
	ActionNextTab
	ActionPreviousTab
	ActionTogglePause
	ActionStop
	ActionNextTrack
	ActionPreviousTrack
	ActionSeekForward
	ActionSeekBack
	ActionVolumeUp
	ActionVolumeDown
	ActionToggleRepeat
	ActionToggleRandom
	ActionToggleSingle
	ActionToggleConsume
	ActionShowHelp

	// Common navigation scope.
	ActionUp
	ActionDown
	ActionUpHalf
	ActionDownHalf
	ActionTop
	ActionBottom
	ActionDescend
	ActionAscend
	ActionEnterSearch
	ActionNextResult
	ActionPreviousResult
	ActionConfirm

	// Queue scope.
	ActionDelete
	ActionDeleteAll
	ActionSaveQueue

	// Logs scope.
	ActionClearLogs
)

var actionNames = map[Action]string{
	ActionQuit:           "quit",
	ActionNextTab:        "next_tab",
	ActionPreviousTab:    "previous_tab",
	ActionTogglePause:    "toggle_pause",
	ActionStop:           "stop",
	ActionNextTrack:      "next_track",
	ActionPreviousTrack:  "previous_track",
	ActionSeekForward:    "seek_forward",
	ActionSeekBack:       "seek_back",
	ActionVolumeUp:       "volume_up",
	ActionVolumeDown:     "volume_down",
	ActionToggleRepeat:   "toggle_repeat",
	ActionToggleRandom:   "toggle_random",
	ActionToggleSingle:   "toggle_single",
	ActionToggleConsume:  "toggle_consume",
	ActionShowHelp:       "show_help",
	ActionUp:             "up",
	ActionDown:           "down",
	ActionUpHalf:         "up_half",
	ActionDownHalf:       "down_half",
	ActionTop:            "top",
	ActionBottom:         "bottom",
	ActionDescend:        "descend",
	ActionAscend:         "ascend",
	ActionEnterSearch:    "enter_search",
	ActionNextResult:     "next_result",
	ActionPreviousResult: "previous_result",
	ActionConfirm:        "confirm",
	ActionDelete:         "delete",
	ActionDeleteAll:      "delete_all",
	ActionSaveQueue:      "save_queue",
	ActionClearLogs:      "clear",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for action, name := range actionNames {
		m[name] = action
	}
	return m
}()

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction resolves a config action name.
func ParseAction(name string) (Action, error) {
	if action, ok := actionsByName[name]; ok {
		return action, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
