package events

import "github.com/atomicstack/grouped-picker/internal/logging"

type DemoTracer struct{}

var Demo = DemoTracer{}

func (DemoTracer) Policy(name string) {
	logging.Trace("demo.policy", map[string]interface{}{"policy": name})
}

func (DemoTracer) Selection(id, label string) {
	logging.Trace("demo.selection", map[string]interface{}{"id": id, "label": label})
}

func (DemoTracer) Reload(path string, roots int) {
	logging.Trace("demo.reload", map[string]interface{}{"path": path, "roots": roots})
}
