package ui

import (
	"errors"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enderelijas/shopfront/internal/shop"
	"github.com/enderelijas/shopfront/internal/theme"
	"github.com/enderelijas/shopfront/internal/ui/command"
	uistate "github.com/enderelijas/shopfront/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// screen mirrors the page the session last rendered: its payload, its
// controls, and the presentation state of the options pane.
type screen struct {
	payload  shop.Payload
	selector shop.Selector
	back     shop.Control
	options  *uistate.Options
}

func newScreen(payload shop.Payload, controls []shop.Control) *screen {
	s := &screen{payload: payload}
	for _, ctl := range controls {
		switch c := ctl.(type) {
		case *shop.BackControl:
			s.back = c
		default:
			if sel, ok := ctl.(shop.Selector); ok && s.selector == nil {
				s.selector = sel
			}
		}
	}
	rows := []uistate.Row(nil)
	if s.selector != nil {
		opts := s.selector.Options()
		rows = make([]uistate.Row, 0, len(opts))
		for _, opt := range opts {
			label := opt.Label
			if opt.Icon != "" {
				label = opt.Icon + " " + opt.Label
			}
			rows = append(rows, uistate.Row{ID: opt.ID, Label: label, Detail: opt.Detail})
		}
	}
	s.options = uistate.NewOptions(payload.Title, rows)
	return s
}

// Model implements the Bubble Tea model for the shop browser.
type Model struct {
	session      *shop.Session
	recorder     *command.Recorder
	bus          *command.Bus
	screen       *screen
	loading      bool
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	verbose      bool
	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around an opened-but-not-yet-rendered
// session. The recorder must be the platform the session was built with.
func NewModel(session *shop.Session, recorder *command.Recorder, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		session:    session,
		recorder:   recorder,
		bus:        command.New(),
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleResize,
		reflect.TypeOf(command.Result{}):    m.handleResult,
	}
}

// Init is part of the tea.Model interface: it focuses the filter cursor
// and asks the session to render its starting page.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.bus.Open(m.session, m.recorder)}
	m.loading = true
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler, ok := m.handlers[reflect.TypeOf(msg)]; ok {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleResize(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) handleResult(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingLabel = ""
	if res.Err != nil {
		m.errMsg = userFacingError(res.Err)
		return nil
	}
	m.errMsg = ""
	if res.Payload != nil {
		m.screen = newScreen(*res.Payload, res.Controls)
		m.syncViewport()
	}
	for _, note := range res.Notes {
		m.setInfo(note)
	}
	if m.verbose && len(res.Notes) == 0 && res.Label != "" {
		m.setInfo("Selected " + res.Label)
	}
	return nil
}

// userFacingError keeps selection failures readable; anything else is
// surfaced verbatim.
func userFacingError(err error) string {
	var unknown *shop.UnknownSelectionError
	if errors.As(err, &unknown) {
		return "Unknown selection " + unknown.Value
	}
	return err.Error()
}

func (m *Model) dispatch(controlID, value, label string) tea.Cmd {
	m.loading = true
	m.pendingLabel = label
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Dispatch(m.session, m.recorder, controlID, value, label)
}

func (m *Model) syncViewport() {
	if m.screen == nil {
		return
	}
	m.screen.options.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
