package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/maardu-realty/internal/config"
	"github.com/donaldgifford/maardu-realty/pkg/logger"
)

var checkExpiredCmd = &cobra.Command{
	Use:   "check-expired",
	Short: "Run the listing expiration sweep once and exit",
	Long: "Runs the expiration sweep outside the server, for cron-driven\n" +
		"deployments. It takes the same lock and writes the same job ledger\n" +
		"as the scheduled job, so it never overlaps a running server's sweep.",
	RunE: runCheckExpired,
}

func init() {
	rootCmd.AddCommand(checkExpiredCmd)
}

func runCheckExpired(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	a, err := newApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	summary, err := a.scheduler.RunExpirationCheck(cmd.Context())
	if summary != nil {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(summary); encErr != nil {
			return fmt.Errorf("writing summary: %w", encErr)
		}
	}
	if err != nil {
		return fmt.Errorf("expiration check: %w", err)
	}
	return nil
}
