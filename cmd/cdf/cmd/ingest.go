package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file.json>",
		Short: "Submit extracted listings",
		Long: "Reads a JSON array of extracted listings (or an object with a\n" +
			"\"listings\" array), stores them and triggers a scoring pass.",
		Example: `  cdf ingest listings.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := readIngestFile(args[0])
			if err != nil {
				return err
			}
			if len(listings) == 0 {
				return fmt.Errorf("%s contains no listings", args[0])
			}

			resp, err := newClient().Ingest(cmd.Context(), listings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}

			fmt.Fprintf(out, "Received %d, stored %d, failed %d, scored %d.\n",
				resp.Received, resp.Stored, resp.Failed, resp.Scored)
			for _, e := range resp.Errors {
				fmt.Fprintf(out, "  error: %s\n", e)
			}
			return nil
		},
	}
}

// readIngestFile accepts either a bare array or {"listings": [...]}.
func readIngestFile(path string) ([]domain.IngestListing, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path from CLI argument
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var listings []domain.IngestListing
	if err := json.Unmarshal(data, &listings); err == nil {
		return listings, nil
	}

	var wrapped struct {
		Listings []domain.IngestListing `json:"listings"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return wrapped.Listings, nil
}
