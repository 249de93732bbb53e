package cmd

import (
	"github.com/spf13/cobra"

	"hmiq/internal/application"
	"hmiq/internal/application/commands"
)

type filterFlags struct {
	search   string
	scales   []string
	time     string
	language string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "case-insensitive substring of the name")
	cmd.Flags().StringSliceVar(&f.scales, "scale", nil, "exact scale name; repeat or comma-separate to match any of several")
	cmd.Flags().StringVarP(&f.time, "time", "t", "", "administration time: PreStudy, PostStudy or Standalone")
	cmd.Flags().StringVarP(&f.language, "language", "l", "", "language code the questionnaire is available in (e.g. DE)")
}

func (f *filterFlags) criteria() (application.Criteria, error) {
	return application.ParseCriteria(f.search, f.scales, f.time, f.language)
}

func newListCmd(c *cli) *cobra.Command {
	var (
		filters filterFlags
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List questionnaires matching all given filters",
		Long: `List questionnaires. Filters combine with AND; several --scale values
match questionnaires measuring any of them.

Examples:
  hmiq-cli list
  hmiq-cli list --scale Usability
  hmiq-cli list --time PostStudy --language DE
  hmiq-cli list --scale Hedonic,Pragmatic --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := filters.criteria()
			if err != nil {
				return err
			}

			results, err := commands.NewListCommand(c.repo, criteria).Execute(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			renderQuestionnaires(cmd.OutOrStdout(), results)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
