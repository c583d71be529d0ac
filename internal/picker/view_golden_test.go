package picker

import (
	"os"
	"testing"

	"github.com/atomicstack/grouped-picker/internal/testutil"
	"github.com/atomicstack/grouped-picker/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func goldenForest() []tree.Node {
	return tree.Nodes(
		tree.Group("fruit", "Fruit",
			tree.Leaf("apple", "Apple"),
			&tree.Item{Key: "banana", Title: "Banana", Disabled: true},
		),
		tree.Leaf("water", "Just water"),
	)
}

func TestClosedViewGolden(t *testing.T) {
	m := New(goldenForest(), tree.Leaf("apple", "Apple"), nil).Width(24)
	testutil.AssertGolden(t, "golden/picker_closed.txt", testutil.StripTrailingSpace(m.View()))
}

func TestOpenViewGolden(t *testing.T) {
	m := New(goldenForest(), tree.Leaf("apple", "Apple"), nil).Width(24)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	testutil.AssertGolden(t, "golden/picker_open.txt", testutil.StripTrailingSpace(m.View()))
}

func TestClosedViewGoldenDiffersForOtherSelection(t *testing.T) {
	data, err := os.ReadFile(testutil.GoldenPath(t, "golden/picker_closed.txt"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	other := New(tree.Nodes(tree.Leaf("x", "Other")), nil, nil).Width(24)
	if got := testutil.StripTrailingSpace(other.View()); got == string(data) {
		t.Fatalf("expected a different forest to render differently, got %q", got)
	}
}
