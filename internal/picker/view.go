package picker

import (
	"fmt"
	"strings"

	"github.com/atomicstack/grouped-picker/internal/tree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	rowIndicator = "▌"
	checkMark    = "✓"
	dropCaret    = "▾"
)

// View renders the collapsed dropdown line and, when open, the pop-up below
// it.
func (m Model) View() string {
	closed := m.closedLine()
	if !m.popup.open {
		return closed
	}
	return lipgloss.JoinVertical(lipgloss.Left, closed, m.popupView())
}

func (m Model) closedLine() string {
	text := m.Placeholder
	style := m.styles.ClosedPlaceholder
	if row, ok := m.menu.SelectedRow(); ok {
		text = withIcon(row.Icon, row.Entry.Title)
		style = m.styles.Closed
	}
	text = " " + text + " "
	caret := dropCaret + " "
	if m.width > 0 {
		avail := m.width - lipgloss.Width(caret)
		if avail < 1 {
			avail = 1
		}
		if lipgloss.Width(text) > avail {
			text = truncate.StringWithTail(text, uint(avail), "…")
		}
		if pad := avail - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return render(style, text) + render(m.styles.Caret, caret)
}

func (m Model) popupView() string {
	rows := m.menu.Rows
	if len(rows) == 0 {
		return m.box([]string{render(m.styles.Info, "(no entries)")})
	}
	start, end := m.visibleRange()
	inner := m.innerWidth()
	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, render(m.styles.Scroll, fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.rowLine(i, inner))
	}
	if rest := len(rows) - end; rest > 0 {
		lines = append(lines, render(m.styles.Scroll, fmt.Sprintf("↓ %d more", rest)))
	}
	return m.box(lines)
}

func (m Model) visibleRange() (int, int) {
	total := len(m.menu.Rows)
	if m.maxVisible <= 0 || total <= m.maxVisible {
		return 0, total
	}
	start := m.popup.offset
	if start < 0 {
		start = 0
	}
	if start+m.maxVisible > total {
		start = total - m.maxVisible
	}
	return start, start + m.maxVisible
}

// innerWidth is the text width inside the border; zero means fit to content.
func (m Model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - 2
	if w < 1 {
		w = 1
	}
	return w
}

func (m Model) rowLine(idx, width int) string {
	row := m.menu.Rows[idx]
	indicatorStyle := m.styles.ItemIndicator
	lineStyle := m.styles.Item
	switch {
	case idx == m.popup.cursor:
		indicatorStyle = m.styles.SelectedItemIndicator
		lineStyle = m.styles.SelectedItem
	case !row.Enabled:
		lineStyle = m.styles.Disabled
	case row.Entry.Group:
		lineStyle = m.styles.Group
	}
	mark := " "
	if tree.Same(row.Entry.Node, m.selection) && idx == m.menu.Selected {
		mark = checkMark
	}
	body := strings.Repeat(" ", row.Indent) + withIcon(row.Icon, row.Text)
	text := " " + body + " "
	if width > 0 {
		avail := width - lipgloss.Width(rowIndicator) - lipgloss.Width(mark) - 1
		if avail < 1 {
			avail = 1
		}
		if lipgloss.Width(text) > avail {
			text = truncate.StringWithTail(text, uint(avail), "…")
		}
		if pad := avail - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	checkStyle := m.styles.Check
	if idx == m.popup.cursor {
		checkStyle = lineStyle
	}
	return render(indicatorStyle, rowIndicator) + render(lineStyle, text) + render(checkStyle, mark+" ")
}

func (m Model) box(lines []string) string {
	content := strings.Join(lines, "\n")
	if m.styles.Border == nil {
		return content
	}
	style := m.styles.Border.Copy()
	if inner := m.innerWidth(); inner > 0 {
		style = style.Width(inner)
	}
	return style.Render(content)
}

func withIcon(icon, text string) string {
	if icon == "" {
		return text
	}
	return icon + " " + text
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
