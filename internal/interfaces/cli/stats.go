package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marksentry/marksentry/internal/infrastructure/ledger"
)

func newStatsCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print ledger statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store := ledger.NewStore(cfg.Ledger.Path, nil)
			if err := store.Load(); err != nil {
				return err
			}
			stats := store.Stats()

			if opts.Output == "text" {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "records:     %d\n", stats.TotalRecords)
				fmt.Fprintf(out, "applicants:  %d\n", stats.UniqueApplicants)
				fmt.Fprintf(out, "classes:     %d\n", len(stats.ByClass))
				fmt.Fprintf(out, "statuses:    %d\n", len(stats.ByStatus))
				return nil
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
}
