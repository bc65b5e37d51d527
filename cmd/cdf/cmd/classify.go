package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Score a condition description",
		Long: "Sends a Danish condition description to the phrase classifier\n" +
			"and prints the condition score and label.",
		Example: `  cdf classify "Pæn bil men med rust"
  cdf classify --trace "Bilen er i topstand og nysynet"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().Classify(cmd.Context(), strings.Join(args, " "), trace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}

			fmt.Fprintf(out, "%.2f %s\n", res.Score, res.Label)
			if res.Trace == nil {
				return nil
			}

			tw := newTabWriter(out)
			tw.writef("Normalized:\t%s\n", res.Trace.NormalizedText)
			for _, m := range res.Trace.BaseMatches {
				tw.writef("Base:\t%s (%.2f)\n", m.Phrase, m.Score)
			}
			for _, e := range res.Trace.Effects {
				tw.writef("Effect:\t%s %s (%+.2f)\n", e.Kind, e.Phrase, e.Delta)
			}
			return tw.finish()
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print how the score was derived")

	return cmd
}
