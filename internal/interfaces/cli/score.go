package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marksentry/marksentry/internal/domain/trademark"
)

func newScoreCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score NAME1 NAME2",
		Short: "Score two names against each other",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := trademark.ScorePair(args[0], args[1])
			level := trademark.Classify(sim.Overall)

			if opts.Output == "text" {
				fmt.Fprintf(cmd.OutOrStdout(), "%q vs %q\n", args[0], args[1])
				fmt.Fprintf(cmd.OutOrStdout(), "overall: %.2f  phonetic: %.1f  fuzzy: %.2f\n",
					sim.Overall, sim.Phonetic.AvgPhonetic, sim.Fuzzy.AvgFuzzy)
				fmt.Fprintln(cmd.OutOrStdout(), level)
				return nil
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"name1":      args[0],
				"name2":      args[1],
				"similarity": sim,
				"level":      level,
			})
		},
	}
}
