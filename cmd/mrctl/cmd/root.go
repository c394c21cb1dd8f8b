// Package cmd implements the mrctl CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/maardu-realty/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "mrctl",
		Short: "CLI client for the Maardu Realty portal API",
		Long: "mrctl is a command-line client for the Maardu Realty API.\n" +
			"It lets you search listings, record and resume payments, download\n" +
			"invoices, run the expiration sweep, and inspect scheduler jobs.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. Ctrl-C cancels the in-flight request.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.mrctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("token", "", "bearer token for signed-in operations")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	bindFlags()

	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(paymentsCmd())
	rootCmd.AddCommand(expirationsCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(jobsCmd())
}

func bindFlags() {
	for _, name := range []string{"server", "token", "output"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mrctl")
	}

	viper.SetEnvPrefix("MRCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"), apiclient.WithToken(viper.GetString("token")))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
