package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hmiq/internal/application/commands"
)

func newScalesCmd(c *cli) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "scales",
		Short: "List scale names usable with list --scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scales, err := commands.NewScaleFacetCommand(c.repo, filter).Execute(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range scales {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "case-insensitive substring of the scale name")
	return cmd
}

func newLanguagesCmd(c *cli) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List language codes used in the catalog",
		Long: `List language codes with their English names.

--filter matches the language name, not the code:
  hmiq-cli languages --filter germ`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commands.NewLanguageFacetCommand(c.repo, filter).Execute(cmd.Context())
			if err != nil {
				return err
			}
			for _, o := range opts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-3s %s\n", o.Code, o.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "case-insensitive substring of the language name")
	return cmd
}
