package events

import "github.com/enderelijas/shopfront/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) OptionEnter(page, option, label, filter string) {
	logging.Trace("ui.enter", map[string]interface{}{
		"page":   page,
		"option": option,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) OptionCursor(page string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"page": page, "cursor": cursor})
}

func (UITracer) Back(page string) {
	logging.Trace("ui.back", map[string]interface{}{"page": page})
}

func (FilterTracer) Cleared(page string) {
	logging.Trace("filter.clear", map[string]interface{}{"page": page})
}

func (FilterTracer) WordBackspace(page, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"page": page, "filter": filter})
}

func (FilterTracer) Cursor(page string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"page": page, "cursor": pos})
}

func (FilterTracer) Append(page, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"page": page, "filter": filter})
}

func (FilterTracer) Backspace(page, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"page": page, "filter": filter})
}

func (CommandTracer) Queue(control, value string) {
	logging.Trace("command.queue", map[string]interface{}{"control": control, "value": value})
}

func (CommandTracer) Result(control, value string, err error) {
	payload := map[string]interface{}{"control": control, "value": value}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
