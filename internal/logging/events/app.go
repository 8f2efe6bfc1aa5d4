package events

import "github.com/enderelijas/shopfront/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) CatalogLoaded(source string, categories, items int) {
	logging.Trace("app.catalog", map[string]interface{}{
		"source":     source,
		"categories": categories,
		"items":      items,
	})
}
