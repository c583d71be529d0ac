package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
}

func TestAssertGoldenMatchesCommittedFile(t *testing.T) {
	AssertGolden(t, "golden/testutil_sample.txt", "first line\nsecond line")
}

func TestCompareGoldenReportsMismatch(t *testing.T) {
	path := GoldenPath(t, "golden/testutil_sample.txt")
	err := compareGolden(path, "first line\nchanged line")
	if err == nil || !strings.Contains(err.Error(), "output mismatch") {
		t.Fatalf("expected mismatch error, got %v", err)
	}
}

func TestCompareGoldenRequiresFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	if err := compareGolden(path, "anything"); err == nil {
		t.Fatalf("expected error for missing golden file")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected missing golden file to stay missing, got %v", err)
	}
}

func TestStripTrailingSpace(t *testing.T) {
	got := StripTrailingSpace("a  \n b \n\t")
	if got != "a\n b\n\t" {
		t.Fatalf("unexpected result %q", got)
	}
}
