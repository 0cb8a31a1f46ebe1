package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
server:
  port: 9090
  read_timeout: 5s
ledger:
  path: "marks.csv"
  watch: true
extraction:
  model: "claude-sonnet-4-20250514"
  max_tokens: 2048
engine:
  default_threshold: 60
log:
  level: "debug"
  format: "console"
metrics:
  enabled: true
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marksentry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, validConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "marks.csv", cfg.Ledger.Path)
	assert.True(t, cfg.Ledger.Watch)
	assert.Equal(t, 2048, cfg.Extraction.MaxTokens)
	assert.Equal(t, 60.0, cfg.Engine.DefaultThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)

	// Defaults fill what the file left out.
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, DefaultExtractionTimeout, cfg.Extraction.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"port out of range", "server:\n  port: 70000\n"},
		{"threshold out of range", "engine:\n  default_threshold: 150\n"},
		{"negative max tokens", "extraction:\n  max_tokens: -1\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MARKSENTRY_LEDGER_PATH", "/data/ledger.csv")
	t.Setenv("MARKSENTRY_SERVER_PORT", "8181")
	t.Setenv("MARKSENTRY_EXTRACTION_API_KEY", "sk-test")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/data/ledger.csv", cfg.Ledger.Path)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.Extraction.APIKey)
	assert.Equal(t, DefaultThreshold, cfg.Engine.DefaultThreshold)
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	snapshot := *cfg
	ApplyDefaults(cfg)
	assert.Equal(t, snapshot.Server, cfg.Server)
	assert.Equal(t, snapshot.Extraction, cfg.Extraction)
	assert.Equal(t, snapshot.Engine, cfg.Engine)
}
