package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// writeCatalog writes a two-environment catalog and returns its path.
func writeCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "environments.json")
	writeFile(t, path, `{"environments":{"envA":{"python":"3.10"},"envB":{"python":"3.11"}}}`)
	return path
}
