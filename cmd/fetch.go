package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wildpages/wildpages/internal/fetch"
	"github.com/wildpages/wildpages/internal/logging"
	"github.com/wildpages/wildpages/internal/metrics"
	"github.com/wildpages/wildpages/internal/prompt"
)

// newFetchCmd creates the 'fetch' subcommand, which builds the page from
// the animals API.
func newFetchCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Generate the animals page from the animals API",
		Long: `Queries the API Ninjas animals endpoint for the given animal name,
renders the matching records as cards, and writes the output page.
Requires an API key (API_NINJAS_KEY, API_KEY, or api.key in config).`,

		RunE: func(cmd *cobra.Command, _ []string) error {
			metrics.Init()

			query := name
			if query == "" {
				var err error
				query, err = prompt.AnimalName(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			client, err := fetch.NewClient(fetch.Config{
				URL:     viper.GetString("api.url"),
				APIKey:  viper.GetString("api.key"),
				Timeout: viper.GetDuration("api.timeout"),
			}, logging.L)
			if err != nil {
				return err
			}

			// Fetch failure aborts; a network error is an operator
			// problem, not page content.
			recs, err := client.Animals(cmd.Context(), query)
			if err != nil {
				metrics.ObserveFetch("error")
				return fmt.Errorf("fetch %q: %w", query, err)
			}
			metrics.ObserveFetch("success")

			return newBuilder().Build(recs, query, "api")
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "animal name to search (prompted for when omitted)")

	return cmd
}
