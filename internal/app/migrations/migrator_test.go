package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	tests := map[string]string{
		"001_init.sql":                   "001",
		"/srv/migrations/002_offers.sql": "002",
		"003.sql":                        "003.sql",
	}
	for in, want := range tests {
		if got := MigrationVersion(in); got != want {
			t.Errorf("MigrationVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPendingFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"010_late.sql", "002_mid.sql", "001_init.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "999_dir.sql"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := PendingFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"001_init.sql", "002_mid.sql", "010_late.sql"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i, name := range want {
		if filepath.Base(files[i]) != name {
			t.Errorf("files[%d] = %s, want %s", i, filepath.Base(files[i]), name)
		}
	}
}

func TestPendingFilesMissingDir(t *testing.T) {
	if _, err := PendingFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
