package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParseKeySpecs(t *testing.T) {
	cases := []struct {
		spec string
		want Key
	}{
		{"q", Key{Code: "q"}},
		{"G", Key{Code: "G"}},
		{"ctrl+d", Key{Code: "d", Mod: ModCtrl}},
		{"alt+enter", Key{Code: "enter", Mod: ModAlt}},
		{"shift+tab", Key{Code: "tab", Mod: ModShift}},
		{"ctrl+alt+x", Key{Code: "x", Mod: ModCtrl | ModAlt}},
		{"space", Key{Code: " "}},
		{"esc", Key{Code: "esc"}},
		{"+", Key{Code: "+"}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.spec)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.spec, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %#v, want %#v", tc.spec, got, tc.want)
		}
	}
}

func TestParseKeyRejectsBadSpecs(t *testing.T) {
	for _, spec := range []string{"", "  ", "meta+x"} {
		if _, err := Parse(spec); err == nil {
			t.Fatalf("expected error for %q", spec)
		}
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, spec := range []string{"q", "ctrl+d", "shift+tab", "ctrl+alt+x"} {
		key, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", spec, err)
		}
		back, err := Parse(key.String())
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", key.String(), err)
		}
		if back != key {
			t.Fatalf("round trip mismatch: %#v vs %#v", key, back)
		}
	}
}

func TestFromKeyMsg(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	if got := FromKeyMsg(msg); got != (Key{Code: "q"}) {
		t.Fatalf("unexpected key %#v", got)
	}
	ctrl := tea.KeyMsg{Type: tea.KeyCtrlD}
	if got := FromKeyMsg(ctrl); got != (Key{Code: "d", Mod: ModCtrl}) {
		t.Fatalf("unexpected key %#v", got)
	}
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	if got := FromKeyMsg(space); got != (Key{Code: " "}) {
		t.Fatalf("unexpected key %#v", got)
	}
}

func TestResolvePriorityScreenOverNavigationOverGlobal(t *testing.T) {
	bindings := NewBindings()
	collide := Key{Code: "d"}
	bindings.Bind(ScopeGlobal, collide, ActionQuit)
	bindings.Bind(ScopeNavigation, collide, ActionDown)
	bindings.Bind(ScopeQueue, collide, ActionDelete)
	r := NewResolver(bindings)

	// All three tables bind "d"; the screen-specific table wins.
	if action, ok := r.Resolve(ScopeQueue, collide); !ok || action != ActionDelete {
		t.Fatalf("queue scope: got %v ok=%v", action, ok)
	}
	// A screen without its own binding falls through to navigation.
	if action, ok := r.Resolve(ScopeAlbums, collide); !ok || action != ActionDown {
		t.Fatalf("albums scope: got %v ok=%v", action, ok)
	}
}

func TestResolveFallsThroughToGlobal(t *testing.T) {
	bindings := NewBindings()
	bindings.Bind(ScopeGlobal, Key{Code: "q"}, ActionQuit)
	r := NewResolver(bindings)
	if action, ok := r.Resolve(ScopeLogs, Key{Code: "q"}); !ok || action != ActionQuit {
		t.Fatalf("got %v ok=%v", action, ok)
	}
}

func TestResolveUnhandled(t *testing.T) {
	r := NewResolver(NewBindings())
	if _, ok := r.Resolve(ScopeAlbums, Key{Code: "z"}); ok {
		t.Fatalf("expected unhandled key")
	}
}

func TestMergeReplacesExactPairOnly(t *testing.T) {
	defaults := NewBindings()
	defaults.Bind(ScopeGlobal, Key{Code: "p"}, ActionTogglePause)
	defaults.Bind(ScopeGlobal, Key{Code: "s"}, ActionStop)
	defaults.Bind(ScopeQueue, Key{Code: "p"}, ActionConfirm)

	user := NewBindings()
	user.Bind(ScopeGlobal, Key{Code: "p"}, ActionStop)

	merged := Merge(defaults, user)
	if merged.Tables[ScopeGlobal][Key{Code: "p"}] != ActionStop {
		t.Fatalf("user binding should replace default for the exact pair")
	}
	if merged.Tables[ScopeGlobal][Key{Code: "s"}] != ActionStop {
		t.Fatalf("unrelated default should survive")
	}
	// No cross-scope suppression: the queue binding for the same key stays.
	if merged.Tables[ScopeQueue][Key{Code: "p"}] != ActionConfirm {
		t.Fatalf("other scope's binding must not be suppressed")
	}
}

func TestParseActionNames(t *testing.T) {
	for action, name := range actionNames {
		parsed, err := ParseAction(name)
		if err != nil {
			t.Fatalf("ParseAction(%q) failed: %v", name, err)
		}
		if parsed != action {
			t.Fatalf("ParseAction(%q) = %v, want %v", name, parsed, action)
		}
	}
	if _, err := ParseAction("does-not-exist"); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}
