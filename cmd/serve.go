package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wildpages/wildpages/internal/logging"
	"github.com/wildpages/wildpages/internal/server"
)

// newServeCmd creates the 'serve' subcommand, a small preview server for
// the generated page.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated animals page over HTTP",
		Long: `Serves the generated output page at /, with /healthz and Prometheus
/metrics alongside. Generation stays a CLI concern; the server only
reads whatever page the last run produced.`,

		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(viper.GetString("generator.output"), logging.L)
			return srv.Run(ctx, viper.GetString("server.addr"))
		},
	}
	return cmd
}
