// Package cli implements the marksentry command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/marksentry/marksentry/internal/config"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Output     string
}

// NewRootCommand creates the root command with global flags and subcommands
// attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "marksentry",
		Short: "Trademark similarity engine and registry service",
		Long: "marksentry scores new trademark applications against a registered corpus\n" +
			"using phonetic and fuzzy string matching, and serves the comparison API.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: environment only)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVarP(&opts.Output, "output", "o", "json", "output format (json, text)")

	cmd.AddCommand(
		newServeCmd(opts),
		newCompareCmd(opts),
		newScoreCmd(opts),
		newStatsCmd(opts),
	)
	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig loads configuration honoring the --config and --log-level flags.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	return cfg, nil
}

// newLogger builds the process logger from configuration.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	return logging.NewLogger(cfg.Log)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
