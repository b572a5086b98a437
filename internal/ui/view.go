package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/arpent/strum/internal/keymap"
	"github.com/arpent/strum/internal/mpd"
)

const (
	previewPanelMinWidth = 40  // minimum cols for the preview panel; below this no split
	previewPanelFraction = 0.4 // fraction of total width given to the preview panel
	fallbackWidth        = 80
)

var previewBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeHelp {
		return m.viewHelp()
	}
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}

	top := m.tabsRow(width) + "\n" + m.headerRow(width) + "\n"
	if m.hasSidePreview() {
		top += m.viewSideBySide(width)
	} else {
		top += m.viewList(width)
	}
	return top + "\n" + m.statusBar(width) + "\n" + m.messageRow(width)
}

// hasSidePreview reports whether the active screen renders with the
// preview panel on the right. The queue and the log ring have nothing
// to prefetch.
func (m *Model) hasSidePreview() bool {
	switch m.screen().Scope() {
	case keymap.ScopeQueue, keymap.ScopeLogs:
		return false
	}
	return m.previewPanelWidth() > 0
}

// previewPanelWidth returns the width in columns for the right-hand
// preview panel. Returns 0 when the terminal is too narrow to split.
func (m *Model) previewPanelWidth() int {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	w := int(float64(width) * previewPanelFraction)
	if w < previewPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) listColumnWidth(width int) int {
	return width - m.previewPanelWidth()
}

func (m *Model) viewList(width int) string {
	lines := m.listLines(width)
	lines = padHeight(lines, m.listHeight())
	lines = applyWidth(lines, width)
	return renderLines(lines)
}

func (m *Model) viewSideBySide(width int) string {
	listW := m.listColumnWidth(width)
	prevW := m.previewPanelWidth()
	height := m.listHeight()

	lines := m.listLines(listW)
	lines = padHeight(lines, height)
	lines = applyWidth(lines, listW)
	leftStr := renderLines(lines)

	// Pad every rendered row to exactly listW visible columns so
	// JoinHorizontal keeps the panel flush to the right edge.
	leftRows := strings.Split(leftStr, "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > listW {
			leftRows[i] = truncate.StringWithTail(row, uint(listW-1), "…")
		} else if w < listW {
			leftRows[i] = row + strings.Repeat(" ", listW-w)
		}
	}
	leftStr = strings.Join(leftRows, "\n")

	rightStr := m.renderPreviewPanel(prevW, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)
}

func (m *Model) listLines(width int) []styledLine {
	top := m.screen().Stack().Top()
	height := m.listHeight()
	top.EnsureVisible(height)

	if len(top.Items) == 0 {
		msg := "(no entries)"
		if top.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", top.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}

	start := top.ViewportOffset
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(top.Items) {
		end = len(top.Items)
	}
	lines := make([]styledLine, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, itemLine(top.Items[i].Display(), i == top.Cursor, width))
	}
	return lines
}

func itemLine(label string, selected bool, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	text := "▌ " + label
	if width > 0 {
		if pad := width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) tabsRow(width int) string {
	parts := make([]string, 0, len(m.screens))
	for i, s := range m.screens {
		label := " " + s.Title() + " "
		if i == m.active {
			parts = append(parts, styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, styles.Tab.Render(label))
		}
	}
	row := strings.Join(parts, " ")
	if lipgloss.Width(row) > width {
		row = truncate.StringWithTail(row, uint(width-1), "…")
	}
	return row
}

func (m *Model) headerRow(width int) string {
	top := m.screen().Stack().Top()
	pos := "0/0"
	if len(top.Items) > 0 {
		pos = fmt.Sprintf("%d/%d", top.Cursor+1, len(top.Items))
	}
	header := fmt.Sprintf("%s  %s", m.screen().Title(), pos)
	if top.Filter != "" {
		header += styles.Filter.Render(fmt.Sprintf("  /%s", top.Filter))
	}
	rendered := styles.Header.Render(header)
	if lipgloss.Width(rendered) > width {
		rendered = truncate.StringWithTail(rendered, uint(width-1), "…")
	}
	return rendered
}

func (m *Model) statusBar(width int) string {
	state := styles.StatusState.Render(" " + m.status.State.String() + " ")
	middle := ""
	if m.hasCurrent {
		middle = " " + m.current.DisplayName()
		if m.status.Duration > 0 {
			middle += fmt.Sprintf("  %s/%s", formatTime(m.status.Elapsed), formatTime(m.status.Duration))
		}
	}
	tail := ""
	if m.status.Volume >= 0 {
		tail += fmt.Sprintf("vol %d%%  ", m.status.Volume)
	}
	if flags := playbackFlags(m.status); flags != "" {
		tail += flags + "  "
	}
	tail += fmt.Sprintf("queue %d ", m.status.PlaylistLength)

	used := lipgloss.Width(state) + lipgloss.Width(middle) + len([]rune(tail))
	gap := width - used
	if gap < 1 {
		gap = 1
	}
	bar := state + styles.StatusBar.Render(middle+strings.Repeat(" ", gap)) + styles.StatusFlags.Render(tail)
	if lipgloss.Width(bar) > width {
		bar = truncate.StringWithTail(bar, uint(width-1), "…")
	}
	return bar
}

func (m *Model) messageRow(width int) string {
	switch m.mode {
	case ModeFilter, ModePrompt:
		return m.input.View()
	}
	var line string
	switch {
	case m.errMsg != "":
		line = styles.Error.Render("Error: " + m.errMsg)
	case m.infoMsg != "":
		line = styles.Info.Render(m.infoMsg)
	}
	if lipgloss.Width(line) > width {
		line = truncate.StringWithTail(line, uint(width-1), "…")
	}
	return line
}

// renderPreviewPanel draws the bordered preview box with exactly height
// rows and totalWidth columns.
func (m *Model) renderPreviewPanel(totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	title := "Preview"
	if entry, ok := m.screen().Stack().Selected(); ok {
		title = "Preview: " + entry.Display()
	}
	var content []string
	for _, entry := range m.screen().Stack().Preview() {
		content = append(content, entry.Display())
	}
	overflow := ""
	if len(content) > innerH {
		overflow = fmt.Sprintf(" %d/%d ", innerH, len(content))
		content = content[:innerH]
	}

	titleSeg := " " + title + " "
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(overflow))
	if dashes < 0 {
		overflow = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := previewBorderStyle.Render(tlc+hz) +
		styles.PreviewTitle.Render(titleSeg) +
		previewBorderStyle.Render(strings.Repeat(hz, dashes)+overflow+hz+trc)
	bottomLine := previewBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(content) {
			line = content[i]
		}
		line = truncateText(line, innerW)
		if pad := innerW - len([]rune(line)); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows = append(rows, previewBorderStyle.Render(vt)+styles.PreviewBody.Render(line)+previewBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

func playbackFlags(st mpd.Status) string {
	var b strings.Builder
	if st.Repeat {
		b.WriteString("r")
	}
	if st.Random {
		b.WriteString("z")
	}
	if st.Single {
		b.WriteString("s")
	}
	if st.Consume {
		b.WriteString("c")
	}
	return b.String()
}

func formatTime(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func padHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 {
		return lines
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, styledLine{})
	}
	return lines
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
