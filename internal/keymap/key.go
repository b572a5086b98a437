// Package keymap maps raw keypresses to semantic actions through layered
// per-scope binding tables.
package keymap

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mod is a modifier bitmask.
type Mod uint8

const (
	ModNone Mod = 0
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
)

func (m Mod) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// Key identifies one keypress: a key code (a rune, or a named key such as
// "enter", "esc", "tab", "up") plus a modifier mask. Shifted runes carry
// the shift in the rune itself, matching Bubble Tea's reporting.
type Key struct {
	Code string
	Mod  Mod
}

// String renders the key in the same syntax Parse accepts.
func (k Key) String() string {
	if k.Mod == ModNone {
		return k.Code
	}
	return k.Mod.String() + "+" + k.Code
}

// Parse reads a binding spec such as "q", "G", "ctrl+d", "shift+tab",
// "space" or "enter".
func Parse(spec string) (Key, error) {
	raw := strings.TrimSpace(spec)
	if raw == "" {
		return Key{}, fmt.Errorf("empty key spec")
	}
	parts := strings.Split(raw, "+")
	key := Key{Code: parts[len(parts)-1]}
	if key.Code == "" {
		// "ctrl++" style specs bind the plus rune itself.
		key.Code = "+"
		parts = parts[:len(parts)-1]
	}
	for _, part := range parts[:len(parts)-1] {
		switch strings.ToLower(part) {
		case "ctrl":
			key.Mod |= ModCtrl
		case "alt":
			key.Mod |= ModAlt
		case "shift":
			key.Mod |= ModShift
		default:
			return Key{}, fmt.Errorf("unknown modifier %q in %q", part, spec)
		}
	}
	if key.Code != " " && strings.TrimSpace(key.Code) == "" {
		return Key{}, fmt.Errorf("missing key code in %q", spec)
	}
	if key.Code == "space" {
		key.Code = " "
	}
	return key, nil
}

// FromKeyMsg canonicalizes a Bubble Tea key message. Bubble Tea already
// folds modifiers into its string form ("ctrl+d", "shift+tab", "G"), so
// parsing that form keeps the two representations aligned.
func FromKeyMsg(msg tea.KeyMsg) Key {
	s := msg.String()
	if s == " " {
		return Key{Code: " "}
	}
	key, err := Parse(s)
	if err != nil {
		return Key{Code: s}
	}
	return key
}
