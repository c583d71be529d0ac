package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const headerTitle = "grouped picker"

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, 8)
	lines = append(lines, render(styles.Header, fmt.Sprintf("%s · %s", headerTitle, m.policyName())))
	lines = append(lines, "")
	lines = append(lines, m.picker.View())
	lines = append(lines, "")
	lines = append(lines, render(styles.Info, m.selectionLine()))
	switch {
	case m.errMsg != "":
		lines = append(lines, render(styles.Error, "Error: "+m.errMsg))
	case m.infoMsg != "":
		lines = append(lines, render(styles.Info, m.infoMsg))
	}
	if m.showFooter {
		lines = append(lines, "")
		lines = append(lines, render(styles.Footer, m.footer()))
	}
	return clampWidth(strings.Join(lines, "\n"), m.width)
}

func (m *Model) selectionLine() string {
	if m.selected == nil {
		return "Selected: none"
	}
	return fmt.Sprintf("Selected: %s (%s)", m.selected.Label(), m.selected.ID())
}

func (m *Model) footer() string {
	var bindings []key.Binding
	if m.picker.Open() {
		bindings = m.picker.KeyMap.ShortHelp()
	} else {
		bindings = []key.Binding{m.picker.KeyMap.Open, m.keys.SwitchPolicy, m.keys.ToggleGroups, m.keys.CopyID, m.keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// clampWidth truncates every rendered row to width visible cells.
func clampWidth(view string, width int) string {
	if width <= 0 {
		return view
	}
	rows := strings.Split(view, "\n")
	for i, row := range rows {
		if lipgloss.Width(row) > width {
			rows[i] = truncate.StringWithTail(row, uint(width), "…")
		}
	}
	return strings.Join(rows, "\n")
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
