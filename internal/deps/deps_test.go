package deps_test

import (
	"os"
	"path/filepath"
	"testing"

	"photoflow/internal/deps"
)

func TestCheckWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Photoshop")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	results := deps.Check(path)
	if len(results) == 0 {
		t.Fatal("expected at least the editor status")
	}
	if results[0].Name != "photoshop" || !results[0].Available {
		t.Fatalf("expected editor to resolve via override, got %+v", results[0])
	}
	if results[0].Detail != path {
		t.Fatalf("expected detail to carry the resolved path, got %q", results[0].Detail)
	}
}

func TestCheckMissingOverride(t *testing.T) {
	results := deps.Check(filepath.Join(t.TempDir(), "missing"))
	if results[0].Available {
		t.Fatalf("expected editor to be unavailable, got %+v", results[0])
	}
	if results[0].Detail == "" {
		t.Fatal("expected a diagnostic detail")
	}
}
