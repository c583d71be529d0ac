package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// AssertGolden compares output with testdata/<goldenName> at the repository
// root. Setting UPDATE_GOLDEN rewrites the file first.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := GoldenPath(t, goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	if err := compareGolden(path, output); err != nil {
		t.Fatalf("%v", err)
	}
}

// compareGolden fails when the golden file is missing or differs from output.
func compareGolden(path, output string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read golden %s: %w", filepath.Base(path), err)
	}
	if string(data) != output {
		return fmt.Errorf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", filepath.Base(path), string(data), output)
	}
	return nil
}

// GoldenPath resolves a file under the repository's testdata directory.
func GoldenPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "testdata", filepath.FromSlash(name))
}

// RepoRoot walks up from the working directory to the directory holding
// go.mod.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

// StripTrailingSpace trims trailing blanks from every line so golden files
// stay stable across editors.
func StripTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
