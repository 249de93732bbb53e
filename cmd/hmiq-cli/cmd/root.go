package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"hmiq/internal/adapters/catalogfile"
	"hmiq/internal/config"
	"hmiq/internal/logging"
	"hmiq/internal/ports"
)

// cli holds what every subcommand needs once the root has initialized
type cli struct {
	catalogPath string
	logLevel    string

	cfg    *config.Config
	logger *slog.Logger
	repo   ports.CatalogRepository
}

// NewRootCmd builds the hmiq-cli command tree
func NewRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "hmiq-cli",
		Short: "Browse a catalog of UX and HMI questionnaires",
		Long: `hmiq-cli lists and filters standardized UX questionnaires (SUS, UEQ,
NASA-TLX, ...) by name, measured scale, administration time and language,
and shows per-language reliability figures.

The bundled catalog is used unless --catalog or HMIQ_CATALOG names a YAML file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip initialization for help commands
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return c.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.catalogPath, "catalog", "c", "", "path to a catalog YAML file (default: $HMIQ_CATALOG or the bundled catalog)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newListCmd(c),
		newShowCmd(c),
		newScalesCmd(c),
		newLanguagesCmd(c),
		newSearchCmd(c),
		newIndexCmd(c),
	)
	return rootCmd
}

func (c *cli) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if c.catalogPath == "" {
		c.catalogPath = cfg.Catalog.Path
	}

	c.cfg = cfg
	c.logger = logging.New(cfg.Log, cmd.ErrOrStderr())

	repo, err := catalogfile.Load(c.catalogPath, c.logger)
	if err != nil {
		return err
	}
	c.repo = repo
	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
