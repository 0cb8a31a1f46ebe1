package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "MARKSENTRY"

// newViper builds a pre-configured Viper instance: YAML file type,
// MARKSENTRY_ env prefix, automatic env binding, and a key replacer mapping
// "." → "_" so that nested keys like "ledger.path" resolve to
// "MARKSENTRY_LEDGER_PATH".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Register every key so AutomaticEnv can surface env-only values through
	// Unmarshal; the zero defaults here are replaced by ApplyDefaults later.
	for key, zero := range map[string]interface{}{
		"server.port":              0,
		"server.read_timeout":      "0s",
		"server.write_timeout":     "0s",
		"server.idle_timeout":      "0s",
		"server.shutdown_timeout":  "0s",
		"server.max_upload_bytes":  0,
		"server.cors_origins":      []string{},
		"ledger.path":              "",
		"ledger.watch":             false,
		"extraction.api_key":       "",
		"extraction.model":         "",
		"extraction.vision_model":  "",
		"extraction.max_tokens":    0,
		"extraction.timeout":       "0s",
		"engine.default_threshold": 0.0,
		"metrics.enabled":          false,
		"log.level":                "",
		"log.format":               "",
		"log.output_paths":         []string{},
		"log.error_output_paths":   []string{},
	} {
		v.SetDefault(key, zero)
	}
	return v
}

// Load reads the YAML file at configPath, merges MARKSENTRY_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from MARKSENTRY_* environment
// variables, with no config file required.  Preferred for containerised
// deployments.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  Intended for
// hot-reloading non-critical settings such as log level and the default
// threshold; callers apply only the safe subset of changes at runtime.
//
// Watch is non-blocking; viper manages the background fsnotify goroutine.
// A changed file that fails to parse or validate is skipped silently.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}
