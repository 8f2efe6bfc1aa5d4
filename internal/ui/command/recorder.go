package command

import (
	"sync"

	"github.com/enderelijas/shopfront/internal/shop"
)

// Recorder implements shop.Platform by capturing render and notify calls
// for the dispatch in flight. Rendering to a terminal cannot fail the way
// a remote chat delivery can, so both operations always succeed; the model
// applies the captured state when the dispatch result arrives.
type Recorder struct {
	mu       sync.Mutex
	payload  shop.Payload
	controls []shop.Control
	rendered bool
	notes    []string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Render captures the payload and controls of the page being shown.
func (r *Recorder) Render(payload shop.Payload, controls []shop.Control) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = payload
	r.controls = controls
	r.rendered = true
	return nil
}

// Notify captures a transient notice.
func (r *Recorder) Notify(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, text)
	return nil
}

// Reset clears captured state ahead of a new dispatch.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls = nil
	r.payload = shop.Payload{}
	r.rendered = false
	r.notes = nil
}

// LastRender returns the most recent captured render, if any.
func (r *Recorder) LastRender() (shop.Payload, []shop.Control, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payload, r.controls, r.rendered
}

// Notes returns the notices captured since the last reset.
func (r *Recorder) Notes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.notes))
	copy(out, r.notes)
	return out
}
