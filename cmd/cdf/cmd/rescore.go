package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/car-deal-finder/internal/api/client"
)

func rescoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescore",
		Short: "Rescore all listings",
		Long: "Runs a full scoring pass: every stored listing is normalized\n" +
			"against the current collection and its composite score rewritten.",
		Example: `  cdf rescore`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scored, err := newClient().Rescore(cmd.Context())
			if apiclient.IsStatus(err, http.StatusTooManyRequests) {
				return errors.New("rescore was requested too recently, try again later")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rescored %d listings.\n", scored)
			return nil
		},
	}
}
