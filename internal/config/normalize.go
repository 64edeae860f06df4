package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeBatch()
	c.normalizeScan()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Photoshop.ExecutablePath, err = expandPath(c.Photoshop.ExecutablePath); err != nil {
		return fmt.Errorf("photoshop.executable_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeBatch() {
	c.Batch.SaveFormat = strings.ToLower(strings.TrimSpace(c.Batch.SaveFormat))
	if c.Batch.SaveFormat == "jpeg" {
		c.Batch.SaveFormat = "jpg"
	}
	if c.Batch.SaveFormat == "" {
		c.Batch.SaveFormat = defaultSaveFormat
	}
}

func (c *Config) normalizeScan() {
	c.Scan.Order = strings.ToLower(strings.TrimSpace(c.Scan.Order))
	if c.Scan.Order == "" {
		c.Scan.Order = defaultScanOrder
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		trimmed = filepath.Join(home, trimmed[2:])
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}
