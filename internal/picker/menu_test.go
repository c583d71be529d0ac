package picker

import (
	"fmt"
	"testing"

	"github.com/atomicstack/grouped-picker/internal/tree"
	"pgregory.net/rapid"
)

func fixture() []tree.Node {
	return tree.Nodes(
		tree.Group("fruit", "Fruit",
			tree.Leaf("apple", "Apple"),
			&tree.Item{Key: "pear", Title: "Pear", Disabled: true},
		),
		tree.Leaf("bread", "Bread"),
		tree.Group("empty", "Empty"),
	)
}

func rowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.Entry.Node.ID()
	}
	return ids
}

func enabledRows(ids []string, enabled []bool) []Row {
	rows := make([]Row, len(ids))
	for i, id := range ids {
		rows[i] = Row{Entry: tree.Entry{Node: tree.Leaf(id, id), Title: id}, Enabled: enabled[i]}
	}
	return rows
}

func TestRestoreFallsBackToFirstEnabled(t *testing.T) {
	rows := enabledRows([]string{"A", "B", "C"}, []bool{false, true, true})
	if got := restoreSelection(rows, tree.Leaf("A", "A")); got != 1 {
		t.Fatalf("expected cursor on B, got %d", got)
	}
}

func TestRestoreWithNothingEnabled(t *testing.T) {
	rows := enabledRows([]string{"A", "B"}, []bool{false, false})
	if got := restoreSelection(rows, tree.Leaf("A", "A")); got != -1 {
		t.Fatalf("expected no cursor, got %d", got)
	}
	if got := restoreSelection(rows, nil); got != -1 {
		t.Fatalf("expected no cursor without selection, got %d", got)
	}
}

func TestRestoreKeepsEnabledSelection(t *testing.T) {
	rows := enabledRows([]string{"A", "B", "C"}, []bool{true, false, true})
	if got := restoreSelection(rows, tree.Leaf("C", "other label")); got != 2 {
		t.Fatalf("expected cursor on C, got %d", got)
	}
}

func TestBuildPolicyGroupSelectable(t *testing.T) {
	cfg := DefaultConfig()
	menu := Build(fixture(), nil, cfg)
	want := map[string]bool{"fruit": false, "apple": true, "pear": false, "bread": true, "empty": false}
	for _, row := range menu.Rows {
		if got := row.Enabled; got != want[row.Entry.Node.ID()] {
			t.Fatalf("%s: expected enabled=%v, got %v", row.Entry.Node.ID(), want[row.Entry.Node.ID()], got)
		}
	}
	if menu.Selected != 1 {
		t.Fatalf("expected first enabled row (apple) selected, got %d", menu.Selected)
	}

	cfg.GroupsSelectable = true
	menu = Build(fixture(), nil, cfg)
	if !menu.Rows[0].Enabled || !menu.Rows[4].Enabled {
		t.Fatalf("expected groups enabled with GroupsSelectable")
	}
	if menu.Selected != 0 {
		t.Fatalf("expected group row selected first, got %d", menu.Selected)
	}
}

func TestBuildPolicyDeselectList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = DeselectList
	cfg.GroupsSelectable = true
	cfg.Deselect = DeselectSet(tree.Leaf("bread", "Bread"))
	menu := Build(fixture(), tree.Leaf("bread", "Bread"), cfg)
	want := map[string]bool{"fruit": false, "apple": true, "pear": true, "bread": false, "empty": false}
	for _, row := range menu.Rows {
		if got := row.Enabled; got != want[row.Entry.Node.ID()] {
			t.Fatalf("%s: expected enabled=%v, got %v", row.Entry.Node.ID(), want[row.Entry.Node.ID()], got)
		}
	}
	if menu.Selected != 1 {
		t.Fatalf("expected deselected selection to fall back to apple, got %d", menu.Selected)
	}
}

func TestBuildIconsAndIndent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FolderIcon = "F"
	cfg.ItemIcon = ""
	cfg.IndentWidth = 3
	menu := Build(fixture(), nil, cfg)
	if menu.Rows[0].Icon != "F" || menu.Rows[1].Icon != "" {
		t.Fatalf("unexpected icons: %q %q", menu.Rows[0].Icon, menu.Rows[1].Icon)
	}
	if menu.Rows[1].Indent != 3 || menu.Rows[0].Indent != 0 {
		t.Fatalf("unexpected indent: %d %d", menu.Rows[0].Indent, menu.Rows[1].Indent)
	}

	cfg.IndentPrefix = "-"
	menu = Build(fixture(), nil, cfg)
	if menu.Rows[1].Text != "-Apple" || menu.Rows[1].Indent != 0 {
		t.Fatalf("expected prefix indentation, got %q indent %d", menu.Rows[1].Text, menu.Rows[1].Indent)
	}
	if menu.Rows[1].Entry.Title != "Apple" {
		t.Fatalf("expected entry title untouched, got %q", menu.Rows[1].Entry.Title)
	}
}

func TestBuildEmptyForest(t *testing.T) {
	menu := Build(nil, tree.Leaf("x", "X"), DefaultConfig())
	if len(menu.Rows) != 0 || menu.Selected != -1 {
		t.Fatalf("expected empty menu without selection, got %#v", menu)
	}
	if _, ok := menu.SelectedRow(); ok {
		t.Fatalf("expected no selected row")
	}
}

func TestBuildCustomPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = func(e tree.Entry, _ Config) bool { return e.Depth == 0 }
	menu := Build(fixture(), nil, cfg)
	if got := menu.EnabledCount(); got != 3 {
		t.Fatalf("expected 3 root rows enabled, got %d", got)
	}
}

func TestResolveBounds(t *testing.T) {
	menu := Build(fixture(), nil, DefaultConfig())
	for i, id := range rowIDs(menu.Rows) {
		node, ok := menu.Resolve(i)
		if !ok || node.ID() != id {
			t.Fatalf("index %d: expected %s, got %v %v", i, id, node, ok)
		}
	}
	for _, idx := range []int{-1, len(menu.Rows), 100} {
		if _, ok := menu.Resolve(idx); ok {
			t.Fatalf("expected index %d to be rejected", idx)
		}
	}
}

func genItems(t *rapid.T, depth int, next *int) []*tree.Item {
	width := rapid.IntRange(0, 3).Draw(t, "width")
	items := make([]*tree.Item, 0, width)
	for i := 0; i < width; i++ {
		item := &tree.Item{Key: fmt.Sprintf("n%d", *next), Title: "x", Disabled: rapid.Bool().Draw(t, "disabled")}
		*next++
		if depth < 2 && rapid.Bool().Draw(t, "group") {
			item.Group = true
			item.Items = genItems(t, depth+1, next)
		}
		items = append(items, item)
	}
	return items
}

func TestBuildRestorationProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		next := 0
		forest := tree.Nodes(genItems(t, 0, &next)...)
		cfg := DefaultConfig()
		cfg.GroupsSelectable = rapid.Bool().Draw(t, "groups")
		if rapid.Bool().Draw(t, "policyA") {
			cfg.Policy = DeselectList
			cfg.Deselect = map[string]struct{}{}
			for i := 0; i < next; i++ {
				if rapid.Bool().Draw(t, "deselect") {
					cfg.Deselect[fmt.Sprintf("n%d", i)] = struct{}{}
				}
			}
		}
		var selection tree.Node
		if next > 0 && rapid.Bool().Draw(t, "hasSelection") {
			selection = tree.Leaf(fmt.Sprintf("n%d", rapid.IntRange(0, next+2).Draw(t, "sel")), "")
		}
		menu := Build(forest, selection, cfg)

		if len(menu.Rows) != next {
			t.Fatalf("expected %d rows, got %d", next, len(menu.Rows))
		}
		first := firstEnabled(menu.Rows)
		switch {
		case first < 0:
			if menu.Selected != -1 {
				t.Fatalf("expected no selection without enabled rows, got %d", menu.Selected)
			}
		case menu.Selected < 0:
			t.Fatalf("expected a selection when row %d is enabled", first)
		default:
			row := menu.Rows[menu.Selected]
			if !row.Enabled {
				t.Fatalf("selected row %d is disabled", menu.Selected)
			}
			if selection != nil && row.Entry.Node.ID() != selection.ID() && menu.Selected != first {
				t.Fatalf("fallback must land on first enabled row %d, got %d", first, menu.Selected)
			}
		}
		for i := 0; i < len(menu.Rows); i++ {
			node, ok := menu.Resolve(i)
			if !ok || node != menu.Rows[i].Entry.Node {
				t.Fatalf("resolve(%d) did not return the row node", i)
			}
		}
		if _, ok := menu.Resolve(len(menu.Rows)); ok {
			t.Fatalf("resolve accepted out-of-range index")
		}
	})
}
