package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enderelijas/shopfront/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.loading {
		return nil
	}
	if handled := m.handleTextInput(keyMsg); handled {
		return nil
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

// handleEscapeKey clears an active filter first; otherwise it activates
// the page's back-control, and quits from the top page where there is
// nothing to go back to.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.screen == nil {
		return tea.Quit
	}
	if m.screen.options.Filter != "" {
		m.screen.options.SetFilter("", 0)
		events.Filter.Cleared(m.screen.options.Page)
		m.syncViewport()
		return nil
	}
	if m.screen.back == nil {
		return tea.Quit
	}
	events.UI.Back(m.screen.options.Page)
	return m.dispatch(m.screen.back.ID(), "", m.screen.back.Label())
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.screen == nil || m.screen.selector == nil {
		return nil
	}
	row, ok := m.screen.options.CurrentRow()
	if !ok {
		return nil
	}
	events.UI.OptionEnter(m.screen.options.Page, row.ID, row.Label, m.screen.options.Filter)
	m.screen.options.SetFilter("", 0)
	return m.dispatch(m.screen.selector.ID(), row.ID, row.Label)
}

func (m *Model) moveCursorUp() {
	if m.screen == nil {
		return
	}
	if m.screen.options.MoveCursorUp() {
		events.UI.OptionCursor(m.screen.options.Page, m.screen.options.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorDown() {
	if m.screen == nil {
		return
	}
	if m.screen.options.MoveCursorDown() {
		events.UI.OptionCursor(m.screen.options.Page, m.screen.options.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageUp() {
	if m.screen == nil {
		return
	}
	if m.screen.options.MoveCursorPageUp(m.maxVisibleRows()) {
		events.UI.OptionCursor(m.screen.options.Page, m.screen.options.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageDown() {
	if m.screen == nil {
		return
	}
	if m.screen.options.MoveCursorPageDown(m.maxVisibleRows()) {
		events.UI.OptionCursor(m.screen.options.Page, m.screen.options.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if m.screen == nil {
		return
	}
	if m.screen.options.MoveCursorHome() {
		events.UI.OptionCursor(m.screen.options.Page, m.screen.options.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if m.screen == nil {
		return
	}
	if m.screen.options.MoveCursorEnd() {
		events.UI.OptionCursor(m.screen.options.Page, m.screen.options.Cursor)
	}
	m.syncViewport()
}
