package ui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arpent/strum/internal/format/table"
	"github.com/arpent/strum/internal/keymap"
)

// viewHelp renders the full-screen binding reference. The query box
// fuzzy-matches against scope, key and action names at once.
func (m *Model) viewHelp() string {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}

	bindings := m.resolver.Effective()
	query := strings.TrimSpace(m.helpQuery.Value())
	rows := make([][]string, 0, len(bindings))
	infos := make([]keymap.BindingInfo, 0, len(bindings))
	for _, b := range bindings {
		haystack := b.Scope.String() + " " + b.Key.String() + " " + b.Action.String()
		if query != "" && !fuzzy.MatchFold(query, haystack) {
			continue
		}
		rows = append(rows, []string{b.Scope.String(), b.Key.String(), b.Action.String()})
		infos = append(infos, b)
	}

	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})

	lines := make([]string, 0, len(formatted)+4)
	lines = append(lines, styles.Header.Render("Key bindings"), "")
	if len(formatted) == 0 {
		lines = append(lines, styles.Info.Render("No bindings match "+strings.TrimSpace(query)))
	}
	var lastScope keymap.Scope = -1
	for i, row := range formatted {
		scope := infos[i].Scope
		if scope != lastScope && lastScope != -1 {
			lines = append(lines, "")
		}
		lastScope = scope
		lines = append(lines, styleHelpRow(row))
	}

	// Leave two rows at the bottom for the query box and the hint.
	maxRows := m.height - 2
	if maxRows > 0 && len(lines) > maxRows {
		lines = lines[:maxRows]
	}
	for i, line := range lines {
		lines[i] = truncateText(line, width)
	}

	body := strings.Join(lines, "\n")
	footer := m.helpQuery.View() + "\n" + styles.Info.Render("esc closes help")
	return body + "\n" + footer
}

// styleHelpRow colors the three columns without disturbing the padding
// the table formatter produced.
func styleHelpRow(row string) string {
	first := strings.Index(row, "  ")
	if first < 0 {
		return row
	}
	rest := first
	for rest < len(row) && row[rest] == ' ' {
		rest++
	}
	second := strings.Index(row[rest:], "  ")
	if second < 0 {
		return styles.HelpScope.Render(row[:first]) + row[first:]
	}
	second += rest
	tail := second
	for tail < len(row) && row[tail] == ' ' {
		tail++
	}
	return styles.HelpScope.Render(row[:first]) +
		row[first:rest] +
		styles.HelpKey.Render(row[rest:second]) +
		row[second:tail] +
		styles.HelpAction.Render(row[tail:])
}
