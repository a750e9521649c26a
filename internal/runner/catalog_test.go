package runner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemLoaderReadsSiblingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "shared.abnf"), []byte("thing = \"x\"\r\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	rl, err := FilesystemLoader(dir)("shared.abnf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := rl.RuleNames()
	if len(names) != 1 || names[0] != "thing" {
		t.Fatalf("expected rule \"thing\", got %v", names)
	}
}

func TestFilesystemLoaderMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := FilesystemLoader(dir)("missing.abnf"); err == nil {
		t.Fatalf("expected an error for a missing catalog file")
	}
}
