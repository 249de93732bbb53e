package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"hmiq/internal/adapters/browser"
	"hmiq/internal/adapters/catalogfile"
	"hmiq/internal/adapters/tui"
	"hmiq/internal/adapters/tui/styles"
	"hmiq/internal/config"
	"hmiq/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	catalogFlag := flag.String("catalog", cfg.Catalog.Path, "path to a catalog YAML file (default: bundled catalog)")
	flag.Parse()

	// The terminal belongs to the UI, so logs only go to log.file
	logger, closer, err := logging.ForTerminalUI(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	repo, err := catalogfile.Load(*catalogFlag, logger)
	if err != nil {
		return err
	}

	// Query the background before the program takes over the terminal
	dark := styles.IsDark()
	logger.Info("starting TUI", "catalog", repo.Source(), "dark", dark)

	app := tui.NewApp(repo, browser.NewOpener(), dark, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
