// Package config loads, normalizes, and validates photoflow configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: editor location and timeouts, default batch adjustment toggles,
// HDR merge settings, scan ordering, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
