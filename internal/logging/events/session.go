package events

import "github.com/enderelijas/shopfront/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Render(sessionID, page string) {
	logging.Trace("session.render", map[string]interface{}{
		"session": sessionID,
		"page":    page,
	})
}

func (SessionTracer) RenderError(sessionID, op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.render-error", map[string]interface{}{
		"session": sessionID,
		"op":      op,
		"error":   err.Error(),
	})
}

func (SessionTracer) Select(sessionID, control, value string) {
	logging.Trace("session.select", map[string]interface{}{
		"session": sessionID,
		"control": control,
		"value":   value,
	})
}

func (SessionTracer) SelectError(sessionID, control, value string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.select-error", map[string]interface{}{
		"session": sessionID,
		"control": control,
		"value":   value,
		"error":   err.Error(),
	})
}

func (SessionTracer) Move(sessionID, control, page string) {
	logging.Trace("session.move", map[string]interface{}{
		"session": sessionID,
		"control": control,
		"page":    page,
	})
}

func (SessionTracer) Note(sessionID, note string) {
	logging.Trace("session.note", map[string]interface{}{
		"session": sessionID,
		"note":    note,
	})
}
