package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/maardu-realty/internal/config"
	"github.com/donaldgifford/maardu-realty/internal/session"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

func init() {
	rootCmd.AddCommand(tokenCommand())
}

func tokenCommand() *cobra.Command {
	var (
		user domain.User
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with the configured session secret",
		Long: "Issues a session token for local development and operator use.\n" +
			"The token is accepted by every instance sharing session.jwt_secret.",
		Example: `  maardu-realty token --user 7d1e --email mari@example.ee --ttl 1h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			auth := session.NewAuthenticator([]byte(cfg.Session.JWTSecret), cfg.Session.Issuer)
			token, err := auth.IssueToken(&user, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&user.ID, "user", "", "user ID (token subject)")
	cmd.Flags().StringVar(&user.Email, "email", "", "user email")
	cmd.Flags().StringVar(&user.Name, "name", "", "user display name")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cobra.CheckErr(cmd.MarkFlagRequired("user"))

	return cmd
}
