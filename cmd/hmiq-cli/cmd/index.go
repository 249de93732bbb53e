package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"hmiq/internal/adapters/sqlite"
	"hmiq/internal/application/commands"
)

func newIndexCmd(c *cli) *cobra.Command {
	var dbPath string

	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Maintain and query the SQLite inverted index",
		Long: `The index maps scale names, languages and administration times to
questionnaires. It is stored at $XDG_DATA_HOME/hmiq/index.db unless --db or
HMIQ_INDEX says otherwise.`,
	}
	indexCmd.PersistentFlags().StringVar(&dbPath, "db", "", "index database path")

	open := func() (*sqlite.Index, error) {
		path := dbPath
		if path == "" {
			path = c.cfg.IndexPath()
		}
		idx := sqlite.NewIndex()
		if err := idx.Open(path); err != nil {
			return nil, err
		}
		return idx, nil
	}

	var force bool
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Rebuild the index if the catalog changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := open()
			if err != nil {
				return err
			}
			defer idx.Close()

			stats, err := commands.NewBuildIndexCommand(c.repo, idx, force).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if stats == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Index %s is up to date\n", idx.Path())
				return nil
			}

			c.logger.Info("index rebuilt", "path", idx.Path(), "duration", stats.Duration)
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d questionnaires (%d scale entries, %d language rows, %d time rows) into %s\n",
				stats.Questionnaires, stats.ScaleEntries, stats.LanguageRows, stats.TimeRows, idx.Path())
			return nil
		},
	}
	buildCmd.Flags().BoolVar(&force, "force", false, "rebuild even when the index is current")

	var filters filterFlags
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "List questionnaires using the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := filters.criteria()
			if err != nil {
				return err
			}

			idx, err := open()
			if err != nil {
				return err
			}
			defer idx.Close()

			stale, err := idx.NeedsRebuild(cmd.Context(), c.repo.All())
			if err != nil {
				return err
			}
			if stale {
				return fmt.Errorf("index %s is missing or out of date; run \"hmiq-cli index build\"", idx.Path())
			}

			results, err := commands.NewQueryIndexCommand(c.repo, idx, criteria).Execute(cmd.Context())
			if err != nil {
				return err
			}
			renderQuestionnaires(cmd.OutOrStdout(), results)
			return nil
		},
	}
	filters.register(queryCmd)

	usageCmd := &cobra.Command{
		Use:   "usage",
		Short: "Show how many questionnaires measure each scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := open()
			if err != nil {
				return err
			}
			defer idx.Close()

			usage, err := idx.ScaleUsage(cmd.Context())
			if err != nil {
				return err
			}

			names := make([]string, 0, len(usage))
			for name := range usage {
				names = append(names, name)
			}
			slices.Sort(names)

			t := newTable("Scale", "Questionnaires")
			for _, name := range names {
				t.Row(name, fmt.Sprint(usage[name]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}

	indexCmd.AddCommand(buildCmd, queryCmd, usageCmd)
	return indexCmd
}
