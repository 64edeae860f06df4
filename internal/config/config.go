package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir string `toml:"log_dir"`
}

// Photoshop contains configuration for locating and supervising the editor.
type Photoshop struct {
	ExecutablePath string `toml:"executable_path"`
	JobTimeout     int    `toml:"job_timeout"`
	SettleSeconds  int    `toml:"settle_seconds"`
}

// Batch contains default adjustment settings for batch edit runs.
type Batch struct {
	ApplyExposure bool   `toml:"apply_exposure"`
	ApplyLens     bool   `toml:"apply_lens"`
	ApplyColor    bool   `toml:"apply_color"`
	SaveFormat    string `toml:"save_format"`
	JPEGQuality   int    `toml:"jpeg_quality"`
}

// HDR contains default settings for HDR merge runs.
type HDR struct {
	BracketCount int  `toml:"bracket_count"`
	RemoveGhosts bool `toml:"remove_ghosts"`
	Output32Bit  bool `toml:"output_32bit"`
}

// Scan contains input discovery settings.
type Scan struct {
	// Order selects input ordering: "path" (default) or "modtime".
	Order string `toml:"order"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for photoflow.
//
// Configuration sections by subsystem:
//   - Paths: log directory (also hosts the run lock file)
//   - Photoshop: executable override, per-job timeout, settle delay
//   - Batch: default adjustment toggles, save format, JPEG quality
//   - HDR: bracket size, ghost removal, 32-bit output
//   - Scan: input ordering
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Photoshop Photoshop `toml:"photoshop"`
	Batch     Batch     `toml:"batch"`
	HDR       HDR       `toml:"hdr"`
	Scan      Scan      `toml:"scan"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/photoflow/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was actually read (false means defaults only).
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// LogFilePath returns the path of the run log file inside the log directory.
func (c *Config) LogFilePath() string {
	return filepath.Join(c.Paths.LogDir, "photoflow.log")
}

// LockFilePath returns the path of the run lock file inside the log directory.
func (c *Config) LockFilePath() string {
	return filepath.Join(c.Paths.LogDir, "photoflow.lock")
}

// EnsureDirectories creates the directories photoflow writes into.
func (c *Config) EnsureDirectories() error {
	if c.Paths.LogDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("ensure log directory: %w", err)
	}
	return nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}
