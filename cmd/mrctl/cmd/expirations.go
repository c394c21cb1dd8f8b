package cmd

import (
	"github.com/spf13/cobra"
)

func expirationsCmd() *cobra.Command {
	expRoot := &cobra.Command{
		Use:   "expirations",
		Short: "Run the listing expiration sweep",
	}

	expRoot.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Email owners of expired listings now",
		Long: "Runs the same sweep the daily scheduler runs. Owners already\n" +
			"notified today are skipped, so repeating the command is safe.",
		Example: `  mrctl expirations check
  mrctl expirations check --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := newClient().CheckExpirations(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), summary)
			}
			return printExpirationSummary(cmd.OutOrStdout(), summary)
		},
	})

	return expRoot
}
