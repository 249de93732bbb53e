package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"hmiq/internal/adapters/tui/views"
	"hmiq/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewCatalog ViewState = iota
	ViewDetail
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo   ports.CatalogRepository
	logger *slog.Logger

	state    ViewState
	previous ViewState // view to return to when help closes
	catalog  *views.CatalogModel
	detail   *views.DetailModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. dark selects icon variants for dark terminals.
func NewApp(repo ports.CatalogRepository, opener ports.LinkOpener, dark bool, logger *slog.Logger) *App {
	return &App{
		repo:    repo,
		logger:  logger,
		state:   ViewCatalog,
		catalog: views.NewCatalogModel(repo, dark),
		detail:  views.NewDetailModel(repo, opener, dark),
		help:    views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.catalog.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.catalog.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToDetailMsg:
		if err := a.detail.Load(msg.Short); err != nil {
			a.logger.Error("failed to load questionnaire", "short", msg.Short, "error", err)
			a.catalog.SetMessage(err.Error(), true)
			return a, nil
		}
		a.logger.Debug("showing questionnaire", "short", msg.Short)
		a.state = ViewDetail
		return a, nil

	case views.SwitchToCatalogMsg:
		a.state = ViewCatalog
		return a, nil

	case views.SwitchToHelpMsg:
		a.previous = a.state
		a.state = ViewHelp
		return a, nil

	case views.CloseHelpMsg:
		a.state = a.previous
		return a, nil

	case views.LinkOpenedMsg:
		if msg.Err != nil {
			a.logger.Warn("link action failed", "url", msg.URL, "copied", msg.Copied, "error", msg.Err)
		}
		_, cmd := a.detail.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewCatalog:
		_, cmd = a.catalog.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDetail:
		return a.detail.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.catalog.View()
	}
}
