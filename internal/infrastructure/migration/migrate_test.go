package migration

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir.sql")
	if err := os.WriteFile(file, []byte("SELECT 1;"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := ResolveDir("", filepath.Join(dir, "missing"), file, dir)
	if err != nil {
		t.Fatalf("resolve dir: %v", err)
	}
	if got != dir {
		t.Fatalf("unexpected dir: got=%q want=%q", got, dir)
	}
}

func TestResolveDir_NothingFound(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := ResolveDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		if _, statErr := os.Stat("/app/db/migrations"); statErr != nil {
			t.Fatalf("expected error when no migration dir exists")
		}
	}
}
