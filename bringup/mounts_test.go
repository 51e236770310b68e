package bringup

import (
	"os"
	"path/filepath"
	"testing"

	"rootsv/platform"
)

func TestCreateRunDirectoriesUserSessionIdempotent(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", root)

	if err := createRunDirectories(platform.UserSessionRoot, discardLogger()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := createRunDirectories(platform.UserSessionRoot, discardLogger()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "service-manager")); err != nil {
		t.Fatalf("expected service-manager dir to exist: %v", err)
	}
}

func TestCreateRunDirectoriesMissingXDGRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	if err := createRunDirectories(platform.UserSessionRoot, discardLogger()); err != nil {
		t.Fatalf("a missing XDG_RUNTIME_DIR should be logged, not returned as an error: %v", err)
	}
}
