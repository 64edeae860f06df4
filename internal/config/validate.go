package config

import (
	"errors"
	"fmt"
)

var validSaveFormats = map[string]struct{}{
	"jpg": {},
	"tif": {},
	"psd": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePhotoshop(); err != nil {
		return err
	}
	if err := c.validateBatch(); err != nil {
		return err
	}
	if err := c.validateHDR(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePhotoshop() error {
	if c.Photoshop.JobTimeout <= 0 {
		return errors.New("photoshop.job_timeout must be positive")
	}
	if c.Photoshop.SettleSeconds < 0 {
		return errors.New("photoshop.settle_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateBatch() error {
	if _, ok := validSaveFormats[c.Batch.SaveFormat]; !ok {
		return fmt.Errorf("batch.save_format must be one of jpg, tif, psd; got %q", c.Batch.SaveFormat)
	}
	return nil
}

func (c *Config) validateHDR() error {
	if c.HDR.BracketCount < 2 {
		return fmt.Errorf("hdr.bracket_count must be at least 2; got %d", c.HDR.BracketCount)
	}
	return nil
}

func (c *Config) validateScan() error {
	switch c.Scan.Order {
	case "path", "modtime":
		return nil
	default:
		return fmt.Errorf("scan.order must be \"path\" or \"modtime\"; got %q", c.Scan.Order)
	}
}
