package config

const (
	defaultLogDir        = "~/.local/share/photoflow/logs"
	defaultJobTimeout    = 600
	defaultSettleSeconds = 2
	defaultSaveFormat    = "jpg"
	defaultJPEGQuality   = 80
	defaultBracketCount  = 3
	defaultScanOrder     = "path"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Photoshop: Photoshop{
			JobTimeout:    defaultJobTimeout,
			SettleSeconds: defaultSettleSeconds,
		},
		Batch: Batch{
			ApplyExposure: true,
			ApplyLens:     true,
			ApplyColor:    true,
			SaveFormat:    defaultSaveFormat,
			JPEGQuality:   defaultJPEGQuality,
		},
		HDR: HDR{
			BracketCount: defaultBracketCount,
			RemoveGhosts: true,
			Output32Bit:  true,
		},
		Scan: Scan{
			Order: defaultScanOrder,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
