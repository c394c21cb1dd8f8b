package cmd

import (
	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show who the configured token signs you in as",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := newClient().GetSession(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), view)
			}
			return printSessionDetail(cmd.OutOrStdout(), view)
		},
	}
}
