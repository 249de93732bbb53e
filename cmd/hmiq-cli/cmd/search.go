package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hmiq/internal/application/commands"
)

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find questionnaires by abbreviation or name",
		Long: `Search abbreviations and names with fuzzy matching.

Results are ranked by relevance; use "list --search" for exact substring filtering.

Examples:
  hmiq-cli search ueq
  hmiq-cli search "trust automation"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := commands.NewSearchCommand(c.repo, args[0]).Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results found")
				return nil
			}

			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", r.Questionnaire.Short, r.Questionnaire.Name)
			}
			return nil
		},
	}
}
