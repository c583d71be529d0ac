package demo

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the demo model synchronously for tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and runs any returned commands to
// completion. Batched commands are expanded in order; tea.Quit stops the run.
func (h *Harness) Send(msg tea.Msg) bool {
	if h.model == nil {
		return false
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return h.processCmd(cmd)
}

// processCmd reports whether the program asked to quit.
func (h *Harness) processCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return false
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if h.processCmd(c) {
				return true
			}
		}
		return false
	}
	return h.Send(msg)
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
