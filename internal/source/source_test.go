package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Trivial test that a missing trailing newline gets synthesized.
func TestReadSynthesizesTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.c")
	if err := os.WriteFile(path, []byte("int main(){return 0;}"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("expected a synthesized trailing newline, got %q", got)
	}
}

// Trivial test that an existing trailing newline isn't doubled.
func TestReadKeepsExistingTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.c")
	if err := os.WriteFile(path, []byte("int main(){return 0;}\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if strings.HasSuffix(got, "\n\n") {
		t.Fatalf("trailing newline was duplicated: %q", got)
	}
}

// Trivial test that a missing file produces an error rather than a panic.
func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "does-not-exist.c"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
