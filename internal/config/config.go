// Package config defines all configuration structures for marksentry.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// LedgerConfig holds parameters for the flat-file trademark ledger.
type LedgerConfig struct {
	// Path is the CSV ledger file holding the registered-trademark corpus.
	Path string `mapstructure:"path"`

	// Watch enables hot reloading of the ledger file on disk changes.
	Watch bool `mapstructure:"watch"`
}

// ExtractionConfig holds parameters for the LLM document-extraction
// collaborator.  The API key is usually supplied via MARKSENTRY_EXTRACTION_API_KEY
// rather than written into the config file.
type ExtractionConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	VisionModel string        `mapstructure:"vision_model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// EngineConfig holds similarity-engine parameters.  The score-fusion weights
// are deliberately NOT configurable; they are named constants in the engine.
type EngineConfig struct {
	// DefaultThreshold is the minimum max_similarity_score a stored record
	// needs to be kept as a match when the caller does not supply one.
	DefaultThreshold float64 `mapstructure:"default_threshold"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the root configuration object.
type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Ledger     LedgerConfig      `mapstructure:"ledger"`
	Extraction ExtractionConfig  `mapstructure:"extraction"`
	Engine     EngineConfig      `mapstructure:"engine"`
	Metrics    MetricsConfig     `mapstructure:"metrics"`
	Log        logging.LogConfig `mapstructure:"log"`
}

// Validate checks invariants that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Ledger.Path == "" {
		return fmt.Errorf("ledger.path must not be empty")
	}
	if c.Engine.DefaultThreshold < 0 || c.Engine.DefaultThreshold > 100 {
		return fmt.Errorf("engine.default_threshold %.2f out of range [0,100]", c.Engine.DefaultThreshold)
	}
	if c.Extraction.MaxTokens < 0 {
		return fmt.Errorf("extraction.max_tokens must not be negative")
	}
	return nil
}
