// Package command runs session dispatches off the Bubble Tea update loop.
// The bus wraps each selection into a tea.Cmd; the recorder is the
// shop.Platform the session renders through, and whatever it captured is
// carried back to the model inside the resulting message.
package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enderelijas/shopfront/internal/logging/events"
	"github.com/enderelijas/shopfront/internal/shop"
)

// Result reports a finished dispatch: the error (if any), the page the
// platform was asked to render, and any notices delivered along the way.
type Result struct {
	Control  string
	Value    string
	Label    string
	Err      error
	Payload  *shop.Payload
	Controls []shop.Control
	Notes    []string
}

// Bus coordinates the execution of session dispatches.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Open wraps the session's initial render into a Bubble Tea command.
func (b *Bus) Open(session *shop.Session, rec *Recorder) tea.Cmd {
	events.Command.Queue("session:open", "")
	return func() tea.Msg {
		rec.Reset()
		err := session.Open()
		events.Command.Result("session:open", "", err)
		return collect(rec, Result{Control: "session:open", Err: err})
	}
}

// Dispatch wraps one selection event into a Bubble Tea command while
// emitting trace logs.
func (b *Bus) Dispatch(session *shop.Session, rec *Recorder, controlID, value, label string) tea.Cmd {
	events.Command.Queue(controlID, value)
	return func() tea.Msg {
		rec.Reset()
		err := session.HandleSelect(controlID, value)
		events.Command.Result(controlID, value, err)
		return collect(rec, Result{Control: controlID, Value: value, Label: label, Err: err})
	}
}

func collect(rec *Recorder, res Result) Result {
	if payload, controls, ok := rec.LastRender(); ok {
		res.Payload = &payload
		res.Controls = controls
	}
	res.Notes = rec.Notes()
	return res
}
