package models

import (
	"os"
	"path/filepath"
	"testing"
)

// GetFixturePath returns the absolute path of a file under the module's
// testdata directory. The module root is found by walking up from the
// working directory to go.mod, so it works from any package depth.
func GetFixturePath(t *testing.T, fixturePath string) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "testdata", fixturePath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("Failed to find module root above working directory for testdata/%s", fixturePath)
		}
		dir = parent
	}
}
