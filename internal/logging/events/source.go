package events

import "github.com/atomicstack/grouped-picker/internal/logging"

type SourceTracer struct{}

var Source = SourceTracer{}

func (SourceTracer) Reload(path string, roots int, err error) {
	payload := map[string]interface{}{"path": path, "roots": roots}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("source.reload", payload)
}

func (SourceTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"path": path, "error": err.Error()})
}
