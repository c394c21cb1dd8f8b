package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/maardu-realty/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Search listings",
		Long: "Search the active listings the portal has cached from the\n" +
			"marketplace, or force a refresh of that cache.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsRefreshCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		query    string
		priceMin float64
		priceMax float64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active listings with optional filters",
		Long: "List active listings. The query matches listing titles\n" +
			"case-insensitively and the price range is inclusive.",
		Example: `  # All active listings up to the default maximum price
  mrctl listings list

  # Flats between 50k and 150k
  mrctl listings list --query flat --price-min 50000 --price-max 150000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListListings(cmd.Context(), &apiclient.ListListingsParams{
				Query:    query,
				PriceMin: priceMin,
				PriceMax: priceMax,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.Listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No listings found.")
				return nil
			}
			return printListingsTable(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "match listing titles")
	cmd.Flags().Float64Var(&priceMin, "price-min", 0, "minimum price")
	cmd.Flags().Float64Var(&priceMax, "price-max", 0, "maximum price (server default 1000000)")

	return cmd
}

func listingsRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload listings from the marketplace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := newClient().RefreshListings(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]int{"count": n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed: %d listings cached.\n", n)
			return nil
		},
	}
}
