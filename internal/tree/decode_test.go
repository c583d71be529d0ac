package tree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlTree = `
- id: fruit
  label: Fruit
  children:
    - id: apple
      label: Apple
    - label: Pear
      disabled: true
- id: later
  label: Later
  children: []
- id: bread
  label: Bread
`

func TestDecodeYAMLDistinguishesEmptyChildren(t *testing.T) {
	items, err := Decode([]byte(yamlTree), FormatYAML)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(items))
	}
	if !IsGroup(items[1]) {
		t.Fatalf("expected explicit empty children to produce a group")
	}
	if IsGroup(items[2]) {
		t.Fatalf("expected missing children to produce a leaf")
	}
	pear := items[0].Items[1]
	if !pear.Disabled || pear.Selectable() {
		t.Fatalf("expected pear to be unselectable")
	}
	if want := DerivedID([]string{"Fruit", "Pear"}); pear.ID() != want {
		t.Fatalf("expected derived id %s, got %s", want, pear.ID())
	}
}

func TestDecodeJSON(t *testing.T) {
	data := `[{"id":"a","label":"A","children":[]},{"id":"b","label":"B"}]`
	items, err := Decode([]byte(data), FormatJSON)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(items) != 2 || !IsGroup(items[0]) || IsGroup(items[1]) {
		t.Fatalf("unexpected items: %#v", items)
	}
}

func TestDecodeRejectsInvalidNodes(t *testing.T) {
	_, err := Decode([]byte("- disabled: true\n"), FormatYAML)
	if !errors.Is(err, ErrEmptyNode) {
		t.Fatalf("expected ErrEmptyNode, got %v", err)
	}
	_, err = Decode([]byte("- id: a\n- id: a\n"), FormatYAML)
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	if _, err := Decode([]byte("{"), FormatJSON); err == nil {
		t.Fatalf("expected parse error for malformed json")
	}
}

func TestDerivedIDStable(t *testing.T) {
	a := DerivedID([]string{"Fruit", "Pear"})
	b := DerivedID([]string{"Fruit", "Pear"})
	if a != b {
		t.Fatalf("expected stable ids, got %s and %s", a, b)
	}
	if a == DerivedID([]string{"FruitPear"}) {
		t.Fatalf("expected path segments to matter")
	}
}

func TestLoadFileUsesExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.json")
	if err := os.WriteFile(path, []byte(`[{"label":"Only"}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	items, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(items) != 1 || items[0].Label() != "Only" {
		t.Fatalf("unexpected items: %#v", items)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if FormatForPath("x.YAML") != FormatYAML || FormatForPath("x.Json") != FormatJSON {
		t.Fatalf("unexpected format detection")
	}
}
