package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/car-deal-finder/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Query listings",
		Long: "Query and inspect listings that have been ingested and scored\n" +
			"by the Car Deal Finder service.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsShowCmd(),
		listingsTopCmd(),
		listingsDeleteCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var params apiclient.ListListingsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Long: "List stored listings with optional price, model year, mileage\n" +
			"and score filters. Unscored listings sort last.",
		Example: `  # List the best scored listings first
  cdf listings list

  # Cheap, recent cars with few kilometers
  cdf listings list --max-price 50000 --min-year 2014 --max-mileage 120000

  # Sort by price with pagination
  cdf listings list --sort-by price --order asc --limit 20 --offset 40`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListListings(cmd.Context(), &params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Fprintln(out, "No listings found.")
				return nil
			}

			fmt.Fprintf(out, "Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(out, resp.Listings)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&params.MinPrice, "min-price", 0, "minimum price (DKK)")
	f.Float64Var(&params.MaxPrice, "max-price", 0, "maximum price (DKK)")
	f.IntVar(&params.MinYear, "min-year", 0, "minimum model year")
	f.IntVar(&params.MaxYear, "max-year", 0, "maximum model year")
	f.IntVar(&params.MinMileage, "min-mileage", 0, "minimum kilometers driven")
	f.IntVar(&params.MaxMileage, "max-mileage", 0, "maximum kilometers driven")
	f.IntVar(&params.MinScore, "min-score", 0, "minimum composite score")
	f.StringVar(&params.SortBy, "sort-by", "",
		"sort field (score, price, model_year, mileage, fetched_at, condition_score)")
	f.StringVar(&params.Order, "order", "", "sort direction (asc, desc)")
	f.IntVar(&params.Limit, "limit", 50, "number of results")
	f.IntVar(&params.Offset, "offset", 0, "result offset")

	return cmd
}

func listingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Aliases: []string{"get"},
		Short:   "Show listing details",
		Example: `  cdf listings show 2f1c9c1e-5b7e-4f51-9d8e-1c2f0b4f7a10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newClient().GetListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), l)
			}
			return printListingDetail(cmd.OutOrStdout(), l)
		},
	}
}

func listingsTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "top",
		Short:   "Show the best deals",
		Example: `  cdf listings top --limit 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listings, err := newClient().TopListings(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, listings)
			}
			if len(listings) == 0 {
				fmt.Fprintln(out, "No scored listings yet.")
				return nil
			}
			return printListingsTable(out, listings)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of listings (1-50)")

	return cmd
}

func listingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteListing(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted listing %s.\n", args[0])
			return nil
		},
	}
}
