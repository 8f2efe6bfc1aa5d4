package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/enderelijas/shopfront/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput routes key presses that edit the filter. It reports
// whether the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.screen == nil {
		return false
	}
	pane := m.screen.options
	switch msg.String() {
	case "ctrl+u":
		if pane.Filter == "" {
			return false
		}
		pane.SetFilter("", 0)
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.Cleared(pane.Page)
		m.syncViewport()
		return true
	case "ctrl+w":
		if !pane.DeleteFilterWordBackward() {
			return false
		}
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.WordBackspace(pane.Page, pane.Filter)
		m.syncViewport()
		return true
	case "ctrl+a":
		if !pane.MoveFilterCursorStart() {
			return false
		}
		events.Filter.Cursor(pane.Page, pane.FilterCursor)
		return true
	case "ctrl+e":
		if !pane.MoveFilterCursorEnd() {
			return false
		}
		events.Filter.Cursor(pane.Page, pane.FilterCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !pane.DeleteFilterRuneBackward() {
			return false
		}
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.Backspace(pane.Page, pane.Filter)
		m.syncViewport()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		if !pane.MoveFilterCursorRuneBackward() {
			return false
		}
		events.Filter.Cursor(pane.Page, pane.FilterCursor)
		return true
	case tea.KeyRight:
		if !pane.MoveFilterCursorRuneForward() {
			return false
		}
		events.Filter.Cursor(pane.Page, pane.FilterCursor)
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	pane := m.screen.options
	if !pane.InsertFilterText(text) {
		return false
	}
	m.errMsg = ""
	m.forceClearInfo()
	events.Filter.Append(pane.Page, pane.Filter)
	m.syncViewport()
	return true
}

// filterPrompt renders the bottom filter line with a visible caret.
func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	}
	if m.screen == nil {
		return prompt
	}
	pane := m.screen.options
	if pane.Filter == "" {
		placeholder := "(type to filter)"
		runes := []rune(placeholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(pane.Filter)
	pos := pane.FilterCursorPos()
	head := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	tail := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		tail = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + head + m.renderFilterCursor(caretRune) + tail
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	return m.filterCursor.View()
}
