package cmd

import (
	"github.com/spf13/cobra"
)

func weightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weights",
		Short: "Show the server's scoring weights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := newClient().Weights(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), w)
			}

			tw := newTabWriter(cmd.OutOrStdout())
			if w.SearchTerm != "" {
				tw.writef("Search:\t%s\n", w.SearchTerm)
			}
			tw.writef("Price:\t%.2f\n", w.Weights.Price)
			tw.writef("Year:\t%.2f\n", w.Weights.Year)
			tw.writef("Mileage:\t%.2f\n", w.Weights.Mileage)
			tw.writef("Condition:\t%.2f\n", w.Weights.Condition)
			tw.writef("Winsorize:\t%.2f - %.2f\n", w.Winsorize.Lower, w.Winsorize.Upper)
			return tw.finish()
		},
	}
}
