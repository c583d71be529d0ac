package picker

import (
	"testing"

	"github.com/atomicstack/grouped-picker/internal/tree"
)

func typeaheadRows() []Row {
	titles := []struct {
		title   string
		enabled bool
	}{
		{"Editors", false},
		{"Vim", true},
		{"Neovim", true},
		{"Visual Studio Code", true},
		{"Vi", false},
	}
	rows := make([]Row, len(titles))
	for i, tt := range titles {
		rows[i] = Row{Entry: tree.Entry{Title: tt.title}, Enabled: tt.enabled}
	}
	return rows
}

func TestMatchRow(t *testing.T) {
	rows := typeaheadRows()
	cases := []struct {
		query string
		want  int
	}{
		{"", -1},
		{"  ", -1},
		{"vim", 1},
		{"vis", 3},
		{"VI", 1},
		{"eovi", 2},
		{"vsc", 3},
		{"edit", -1},
		{"zzz", -1},
	}
	for _, tc := range cases {
		if got := matchRow(rows, tc.query); got != tc.want {
			t.Fatalf("matchRow(%q) = %d, want %d", tc.query, got, tc.want)
		}
	}
}

func TestMatchRowNoEnabledRows(t *testing.T) {
	rows := []Row{{Entry: tree.Entry{Title: "Only"}, Enabled: false}}
	if got := matchRow(rows, "only"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
