package cmd

import (
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show score statistics",
		Long: "Shows summary statistics of the composite scores, a histogram\n" +
			"over fixed score ranges and the best listings.",
		Example: `  cdf stats --top 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := newClient().Stats(cmd.Context(), top)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), st)
			}
			return printStats(cmd.OutOrStdout(), st)
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of top listings to include (1-50)")

	return cmd
}
