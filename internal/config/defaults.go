package config

import "time"

// Default values applied by ApplyDefaults.
const (
	DefaultServerPort        = 8080
	DefaultReadTimeout       = 15 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultMaxUploadBytes    = 32 << 20 // 32 MiB, sized for PDF journals and ledger CSVs
	DefaultLedgerPath        = "trademark_database.csv"
	DefaultModel             = "claude-sonnet-4-20250514"
	DefaultMaxTokens         = 4096
	DefaultExtractionTimeout = 2 * time.Minute
	DefaultThreshold         = 50.0
)

// ApplyDefaults fills unset fields of cfg in place.  Zero values that are
// legitimately configurable (e.g., metrics.enabled=false) are left alone.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.Ledger.Path == "" {
		cfg.Ledger.Path = DefaultLedgerPath
	}
	if cfg.Extraction.Model == "" {
		cfg.Extraction.Model = DefaultModel
	}
	if cfg.Extraction.VisionModel == "" {
		cfg.Extraction.VisionModel = cfg.Extraction.Model
	}
	if cfg.Extraction.MaxTokens == 0 {
		cfg.Extraction.MaxTokens = DefaultMaxTokens
	}
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = DefaultExtractionTimeout
	}
	if cfg.Engine.DefaultThreshold == 0 {
		cfg.Engine.DefaultThreshold = DefaultThreshold
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}
