package cmd

import (
	"github.com/spf13/cobra"

	"hmiq/internal/application/commands"
	"hmiq/internal/domain"
)

type showOutput struct {
	Questionnaire *domain.Questionnaire `json:"questionnaire"`
	Detail        domain.Detail         `json:"detail"`
}

func newShowCmd(c *cli) *cobra.Command {
	var (
		language string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "show <abbreviation>",
		Short: "Show a questionnaire with reliability figures for one language",
		Long: `Show metadata, links, per-scale Cronbach's alpha and participant details.

Alpha cells read "—" when the scale exists in the language without a reported
value, and "N/A" when the language has no data for the scale.

Examples:
  hmiq-cli show SUS
  hmiq-cli show TiA --language DE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := commands.NewShowCommand(c.repo, args[0], language).Execute(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), showOutput{Questionnaire: res.Questionnaire, Detail: res.Detail})
			}
			renderDetail(cmd.OutOrStdout(), res.Questionnaire, res.Detail)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "language of the reliability figures (default: first available)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
