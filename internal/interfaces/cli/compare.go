package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/marksentry/marksentry/internal/application/comparison"
	"github.com/marksentry/marksentry/internal/domain/trademark"
	"github.com/marksentry/marksentry/internal/infrastructure/ledger"
	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

func newCompareCmd(opts *RootOptions) *cobra.Command {
	var (
		recordPath string
		threshold  float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a record file against the stored corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(recordPath)
			if err != nil {
				return appErrors.Wrap(err, appErrors.ErrCodeBadRequest, "read record file")
			}
			var rec trademark.Record
			if err := json.Unmarshal(data, &rec); err != nil {
				return appErrors.Wrap(err, appErrors.ErrCodeBadRequest, "record file is not a JSON object of strings")
			}

			store := ledger.NewStore(cfg.Ledger.Path, nil)
			if err := store.Load(); err != nil {
				return err
			}
			svc := comparison.NewService(store, nil, nil, cfg.Engine.DefaultThreshold)

			var t *float64
			if cmd.Flags().Changed("threshold") {
				t = &threshold
			}
			report, err := svc.Compare(rec, t)
			if err != nil {
				return err
			}

			if opts.Output == "text" {
				printReportText(cmd.OutOrStdout(), report)
				return nil
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&recordPath, "record", "", "path to a JSON record file")
	cmd.Flags().Float64Var(&threshold, "threshold", trademark.DefaultThreshold, "similarity threshold [0, 100]")
	_ = cmd.MarkFlagRequired("record")
	return cmd
}

func printReportText(w io.Writer, report *trademark.ComparisonReport) {
	fmt.Fprintf(w, "New trademark: %s (%s)\n", report.NewTrademark.Name, report.NewTrademark.Trademark)
	fmt.Fprintf(w, "Corpus: %d records, %d above threshold %.1f\n",
		report.TotalExisting, report.SimilarFound, report.Threshold)
	for i, m := range report.Matches {
		fmt.Fprintf(w, "%2d. %-30s %6.2f  %s\n",
			i+1, m.ExistingTrademark[trademark.LedgerKeyApplicant], m.SimilarityScore, m.SimilarityLevel)
	}
}
