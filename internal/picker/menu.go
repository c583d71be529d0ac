package picker

import (
	"strings"

	"github.com/atomicstack/grouped-picker/internal/tree"
)

// Row is a flattened entry decorated for display.
type Row struct {
	Entry   tree.Entry
	Text    string
	Icon    string
	Indent  int
	Enabled bool
}

// Menu is the displayed row list together with the restored selection. The
// index space of Selected and Resolve is always Rows.
type Menu struct {
	Rows       []Row
	Selected   int
	Generation uint64
}

// Build flattens the forest, applies the enablement and icon rules, and
// restores the selection cursor.
func Build(items []tree.Node, selection tree.Node, cfg Config) Menu {
	entries := tree.Flatten(items)
	rows := make([]Row, len(entries))
	for i, e := range entries {
		row := Row{
			Entry:   e,
			Text:    e.Title,
			Icon:    cfg.icon(e),
			Enabled: cfg.enabled(e),
		}
		if cfg.IndentPrefix != "" {
			row.Text = strings.Repeat(cfg.IndentPrefix, e.Depth) + e.Title
		} else {
			width := cfg.IndentWidth
			if width < 0 {
				width = 0
			}
			row.Indent = e.Depth * width
		}
		rows[i] = row
	}
	return Menu{Rows: rows, Selected: restoreSelection(rows, selection)}
}

// restoreSelection picks the selected enabled row, else the first enabled
// row, else -1.
func restoreSelection(rows []Row, selection tree.Node) int {
	if selection != nil {
		for i, row := range rows {
			if row.Enabled && tree.Same(row.Entry.Node, selection) {
				return i
			}
		}
	}
	return firstEnabled(rows)
}

func firstEnabled(rows []Row) int {
	for i, row := range rows {
		if row.Enabled {
			return i
		}
	}
	return -1
}

// Resolve maps a row index back to its node. Indices outside the row list are
// rejected.
func (m Menu) Resolve(index int) (tree.Node, bool) {
	if index < 0 || index >= len(m.Rows) {
		return nil, false
	}
	node := m.Rows[index].Entry.Node
	return node, node != nil
}

// SelectedRow returns the restored selection row, if any.
func (m Menu) SelectedRow() (Row, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Rows) {
		return Row{}, false
	}
	return m.Rows[m.Selected], true
}

// EnabledCount reports how many rows can be chosen.
func (m Menu) EnabledCount() int {
	n := 0
	for _, row := range m.Rows {
		if row.Enabled {
			n++
		}
	}
	return n
}
