package demo

import (
	"fmt"

	"github.com/atomicstack/grouped-picker/internal/logging"
	"github.com/atomicstack/grouped-picker/internal/logging/events"
	"github.com/atomicstack/grouped-picker/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForSourceEvent(w *source.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return sourceDoneMsg{}
		}
		return sourceEventMsg{event: evt}
	}
}

type sourceEventMsg struct {
	event source.Event
}

type sourceDoneMsg struct{}

func (m *Model) handleSourceEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(sourceEventMsg)
	if !ok {
		return nil
	}
	m.applySourceEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForSourceEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleSourceDoneMsg(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applySourceEvent keeps the previous tree when a reload fails.
func (m *Model) applySourceEvent(evt source.Event) {
	if evt.Err != nil {
		logging.Error(fmt.Errorf("reload tree: %w", evt.Err))
		m.errMsg = evt.Err.Error()
		return
	}
	m.errMsg = ""
	m.infoMsg = ""
	m.replaceForest(evt.Items)
	events.Demo.Reload(evt.Path, len(evt.Items))
	if m.infoMsg == "" {
		m.setInfo(fmt.Sprintf("Reloaded %d entries", len(m.picker.Menu().Rows)))
	}
}
