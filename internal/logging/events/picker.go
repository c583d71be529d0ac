package events

import "github.com/atomicstack/grouped-picker/internal/logging"

type PickerTracer struct{}

var Picker = PickerTracer{}

func (PickerTracer) Sync(generation uint64, rows, enabled, selected int) {
	logging.Trace("picker.sync", map[string]interface{}{
		"generation": generation,
		"rows":       rows,
		"enabled":    enabled,
		"selected":   selected,
	})
}

func (PickerTracer) Open(cursor int) {
	logging.Trace("picker.open", map[string]interface{}{"cursor": cursor})
}

func (PickerTracer) Close() {
	logging.Trace("picker.close", nil)
}

func (PickerTracer) Cursor(cursor int) {
	logging.Trace("picker.cursor", map[string]interface{}{"cursor": cursor})
}

func (PickerTracer) Jump(query string, cursor int) {
	logging.Trace("picker.jump", map[string]interface{}{"query": query, "cursor": cursor})
}

func (PickerTracer) Choose(index int, id, label string) {
	logging.Trace("picker.choose", map[string]interface{}{"index": index, "id": id, "label": label})
}

func (PickerTracer) Reject(reason string, index int, generation uint64) {
	logging.Trace("picker.reject", map[string]interface{}{
		"reason":     reason,
		"index":      index,
		"generation": generation,
	})
}
