package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wildpages/wildpages/internal/logging"
	"github.com/wildpages/wildpages/internal/prompt"
	"github.com/wildpages/wildpages/internal/record"
	"github.com/wildpages/wildpages/internal/site"
)

// newGenerateCmd creates the 'generate' subcommand, which builds the page
// from a local JSON file of animal records.
func newGenerateCmd() *cobra.Command {
	var (
		inputPath  string
		skinFilter bool
	)

	cmd := &cobra.Command{
		Use:   "generate [input.json]",
		Short: "Generate the animals page from a local JSON file",
		Long: `Reads animal records from a JSON file (an array, or an object with an
"animals" array), optionally restricts them to one skin_type chosen
interactively, renders the cards, and writes the output page.`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			input := inputPath
			if len(args) > 0 {
				input = args[0]
			}
			if input == "" {
				input = viper.GetString("generator.input")
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input %s: %w", input, err)
			}
			recs, err := record.Decode(data)
			if err != nil {
				return err
			}
			logging.L.Info("Loaded records",
				zap.String("input", input),
				zap.Int("count", len(recs)),
			)

			selection := record.AllSkins
			if skinFilter {
				counts := record.SkinTypeCounts(recs)
				selection = prompt.SkinChoice(cmd.InOrStdin(), cmd.OutOrStdout(), counts)
				recs = record.FilterBySkin(recs, selection)
			}

			// The ALL sentinel is filter plumbing; the not-found page
			// should name something a reader understands.
			label := selection
			if label == record.AllSkins {
				label = "all animals"
			}

			return newBuilder().Build(recs, label, "file")
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "animals JSON file (default from config: generator.input)")
	cmd.Flags().BoolVar(&skinFilter, "skin-filter", false, "prompt for a skin_type and restrict the page to it")

	return cmd
}

// newBuilder wires a site.Builder from the active configuration.
func newBuilder() *site.Builder {
	return site.NewBuilder(
		viper.GetString("generator.template"),
		viper.GetString("generator.output"),
		viper.GetString("generator.placeholder"),
		logging.L,
	)
}
