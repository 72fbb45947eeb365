// Package cmd defines and implements the CLI commands for the wildpages executable.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wildpages/wildpages/internal/logging"
	"github.com/wildpages/wildpages/pkg/config"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wildpages",
		Short: "Generate a static HTML page of animal cards.",
		Long: `wildpages turns animal records into a static HTML page of cards.
Records come from a local JSON file or from the API Ninjas animals
endpoint; field names are normalized across the inconsistent source
schemas before rendering.`,
	}

	// Initialize Viper configuration.
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	// Define persistent flags.
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	// Initialize the logger once at the very start.
	logging.InitLogger()

	if err := newRootCmd().Execute(); err != nil {
		logging.L.Fatal("Command execution failed", zap.Error(err))
	}
}
