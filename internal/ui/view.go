package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/enderelijas/shopfront/internal/format/table"
)

const footerHint = "↑/↓ move  enter select  esc back  ctrl+c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 24)
	if m.screen == nil {
		loading := "Loading…"
		if m.pendingLabel != "" {
			loading = fmt.Sprintf("Loading %s…", m.pendingLabel)
		}
		lines = append(lines, styledLine{text: loading, style: styles.Loading})
		return renderLines(applyWidth(lines, m.width))
	}

	payload := m.screen.payload
	lines = append(lines, styledLine{text: payload.Title, style: styles.Header})
	if payload.Description != "" {
		lines = append(lines, styledLine{text: payload.Description, style: styles.Description})
	}
	for _, field := range payload.Fields {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: field.Label, style: styles.FieldLabel})
		for _, body := range strings.Split(field.Body, "\n") {
			if body == "" {
				continue
			}
			lines = append(lines, styledLine{text: body, style: styles.FieldBody})
		}
	}

	lines = append(lines, styledLine{})
	if m.screen.selector != nil {
		lines = append(lines, styledLine{text: m.screen.selector.Label(), style: styles.Info})
	}
	lines = append(lines, m.optionLines()...)

	if payload.Footer != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: payload.Footer, style: styles.Footer})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}

	// Reserve the bottom bar rows (error/status + filter prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if m.loading {
		text := "Working…"
		if m.pendingLabel != "" {
			text = fmt.Sprintf("Working on %s…", m.pendingLabel)
		}
		statusLine = styledLine{text: text, style: styles.Loading}
	}
	bottomLines := applyWidth([]styledLine{statusLine}, m.width)
	lines = append(lines, bottomLines...)
	lines = append(lines, styledLine{text: m.filterPrompt()})
	return renderLines(lines)
}

// optionLines renders the visible slice of the options pane, columns
// aligned so icons and labels line up.
func (m *Model) optionLines() []styledLine {
	pane := m.screen.options
	if len(pane.Rows) == 0 {
		msg := "(no entries)"
		if pane.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", pane.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	m.syncViewport()
	start := 0
	display := pane.Rows
	if maxRows := m.maxVisibleRows(); maxRows > 0 && len(display) > maxRows {
		start = pane.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxRows > len(display) {
			start = len(display) - maxRows
			if start < 0 {
				start = 0
			}
			pane.ViewportOffset = start
		}
		display = display[start : start+maxRows]
	}
	cells := make([][]string, 0, len(display))
	for _, row := range display {
		cells = append(cells, []string{row.Label, row.Detail})
	}
	aligned := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignRight})
	out := make([]styledLine, 0, len(aligned))
	for i, text := range aligned {
		out = append(out, m.buildOptionLine(text, start+i))
	}
	return out
}

// buildOptionLine constructs a single styledLine for an option row. The
// indicator column is styled separately so the cursor stands out.
func (m *Model) buildOptionLine(label string, idx int) styledLine {
	indicator := "▌"
	lineStyle := styles.Option
	indicatorStyle := styles.OptionIndicator
	if idx == m.screen.options.Cursor {
		indicatorStyle = styles.SelectedOptionMarker
		lineStyle = styles.SelectedOption
	}
	fullText := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// maxVisibleRows returns how many option rows fit under the payload
// content, keeping room for the bottom bar.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 || m.screen == nil {
		return -1
	}
	used := 2 // bottom bar: status + filter prompt
	used++    // header
	payload := m.screen.payload
	if payload.Description != "" {
		used++
	}
	for _, field := range payload.Fields {
		used += 2 // separator + label
		for _, body := range strings.Split(field.Body, "\n") {
			if body != "" {
				used++
			}
		}
	}
	used++ // blank before the options pane
	if m.screen.selector != nil {
		used++
	}
	if payload.Footer != "" {
		used += 2
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
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

// truncateText shortens a line to the given display width, ANSI-aware.
func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
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
