package shop

import (
	"errors"

	"github.com/enderelijas/shopfront/internal/logging/events"
	"github.com/google/uuid"
)

// Platform is the chat/terminal collaborator the core renders through. It
// is injected at session construction; the core never holds a global
// handle. Render replaces what the user currently sees, Notify delivers a
// transient acknowledgment alongside the page.
type Platform interface {
	Render(payload Payload, controls []Control) error
	Notify(text string) error
}

// ErrSessionClosed is returned for events delivered after disposal.
var ErrSessionClosed = errors.New("session closed")

// Session orchestrates one user's browsing interaction: it holds the
// current page, applies selection events, and renders through the
// platform. Sessions are single-threaded; each event is handled to
// completion before the next.
type Session struct {
	id       string
	platform Platform
	current  *Page
}

// NewSession starts a session on the given page. Nothing is rendered
// until Open is called.
func NewSession(platform Platform, start *Page) *Session {
	return &Session{
		id:       uuid.NewString(),
		platform: platform,
		current:  start,
	}
}

// ID returns the session identifier used for trace correlation.
func (s *Session) ID() string {
	return s.id
}

// Current returns the page the session last rendered successfully.
func (s *Session) Current() *Page {
	return s.current
}

// Open renders the session's starting page.
func (s *Session) Open() error {
	if s.current == nil {
		return ErrSessionClosed
	}
	return s.show(s.current)
}

// HandleSelect applies one user selection: it resolves the control on the
// current page, activates it with the chosen value, and renders the
// resulting page. Failures are fail-stationary — on any error the current
// page is unchanged and a retry from the same page is safe.
func (s *Session) HandleSelect(controlID, value string) error {
	if s.current == nil {
		return ErrSessionClosed
	}
	ctl := s.current.Control(controlID)
	if ctl == nil {
		err := &UnknownSelectionError{Control: controlID, Value: value}
		events.Session.SelectError(s.id, controlID, value, err)
		return err
	}
	outcome, err := ctl.Activate(value)
	if err != nil {
		events.Session.SelectError(s.id, controlID, value, err)
		return err
	}
	events.Session.Select(s.id, controlID, value)
	if outcome.Next != nil {
		if err := s.show(outcome.Next); err != nil {
			return err
		}
		s.current = outcome.Next
		events.Session.Move(s.id, controlID, outcome.Next.Title())
	}
	if outcome.Note != "" {
		if err := s.platform.Notify(outcome.Note); err != nil {
			derr := &DeliveryError{Op: "notify", Err: err}
			events.Session.RenderError(s.id, "notify", err)
			return derr
		}
		events.Session.Note(s.id, outcome.Note)
	}
	return nil
}

// Close releases the session's page and platform references. The catalog
// itself is immutable, so no other cleanup is needed. Used when the
// platform signals expiry or the program shuts down.
func (s *Session) Close() {
	s.current = nil
	s.platform = nil
}

func (s *Session) show(p *Page) error {
	if err := s.platform.Render(p.Payload(), p.Controls()); err != nil {
		events.Session.RenderError(s.id, "render", err)
		return &DeliveryError{Op: "render", Err: err}
	}
	events.Session.Render(s.id, p.Title())
	return nil
}
