package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvironment_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	if err := os.WriteFile(path, []byte("TASKTRACKER_TEST_VALUE=from-file\n"), 0600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("TASKTRACKER_TEST_VALUE", "")
	os.Unsetenv("TASKTRACKER_TEST_VALUE")

	loaded := LoadEnvironment(path)

	if len(loaded) == 0 || loaded[0] != path {
		t.Fatalf("LoadEnvironment() loaded = %v, want %s first", loaded, path)
	}
	if got := os.Getenv("TASKTRACKER_TEST_VALUE"); got != "from-file" {
		t.Fatalf("TASKTRACKER_TEST_VALUE = %q, want %q", got, "from-file")
	}
}

func TestLoadEnvironment_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	if err := os.WriteFile(path, []byte("TASKTRACKER_TEST_KEEP=from-file\n"), 0600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("TASKTRACKER_TEST_KEEP", "from-env")

	LoadEnvironment(path)

	if got := os.Getenv("TASKTRACKER_TEST_KEEP"); got != "from-env" {
		t.Fatalf("TASKTRACKER_TEST_KEEP = %q, want %q", got, "from-env")
	}
}

func TestLoadEnvironment_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	for _, path := range LoadEnvironment(missing) {
		if path == missing {
			t.Fatalf("LoadEnvironment() reported missing file %s as loaded", missing)
		}
	}
}
