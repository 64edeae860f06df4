package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"photoflow/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false when config file is absent")
	}
	if cfg.Batch.SaveFormat != "jpg" {
		t.Fatalf("expected default save format jpg, got %q", cfg.Batch.SaveFormat)
	}
	if cfg.Batch.JPEGQuality != 80 {
		t.Fatalf("expected default jpeg quality 80, got %d", cfg.Batch.JPEGQuality)
	}
	if cfg.HDR.BracketCount != 3 {
		t.Fatalf("expected default bracket count 3, got %d", cfg.HDR.BracketCount)
	}
	if !cfg.Batch.ApplyExposure || !cfg.Batch.ApplyLens || !cfg.Batch.ApplyColor {
		t.Fatal("expected adjustment toggles to default on")
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[photoshop]",
		`executable_path = "` + filepath.Join(dir, "Photoshop") + `"`,
		"job_timeout = 120",
		"",
		"[batch]",
		`save_format = "JPEG"`,
		"apply_lens = false",
		"",
		"[hdr]",
		"bracket_count = 5",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file at %s to be read, got %s exists=%v", path, resolved, exists)
	}
	if cfg.Photoshop.JobTimeout != 120 {
		t.Fatalf("expected job timeout override, got %d", cfg.Photoshop.JobTimeout)
	}
	if cfg.Batch.SaveFormat != "jpg" {
		t.Fatalf("expected JPEG to normalize to jpg, got %q", cfg.Batch.SaveFormat)
	}
	if cfg.Batch.ApplyLens {
		t.Fatal("expected lens toggle override to stick")
	}
	if !cfg.Batch.ApplyExposure {
		t.Fatal("expected unset toggles to keep defaults")
	}
	if cfg.HDR.BracketCount != 5 {
		t.Fatalf("expected bracket count override, got %d", cfg.HDR.BracketCount)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad format", "[batch]\nsave_format = \"bmp\"\n"},
		{"bracket too small", "[hdr]\nbracket_count = 1\n"},
		{"bad order", "[scan]\norder = \"random\"\n"},
		{"zero timeout", "[photoshop]\njob_timeout = 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample returned error: %v", err)
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("expected sample config to load cleanly: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}

func TestLockAndLogPathsDerivedFromLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = "/var/log/photoflow"
	if got := cfg.LogFilePath(); got != filepath.Join("/var/log/photoflow", "photoflow.log") {
		t.Fatalf("unexpected log path %q", got)
	}
	if got := cfg.LockFilePath(); got != filepath.Join("/var/log/photoflow", "photoflow.lock") {
		t.Fatalf("unexpected lock path %q", got)
	}
}
