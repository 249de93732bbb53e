package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hmiq/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// CloseHelpMsg requests returning to whichever view opened the help
type CloseHelpMsg struct{}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("hmiq Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Catalog of standardized HMI and UX questionnaires"))
	b.WriteString("\n\n")

	// Catalog section
	b.WriteString(styles.InputLabel.Render("Catalog"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("ctrl+f / ctrl+b", "Next / previous page"))
	b.WriteString(helpLine("Enter", "Show details"))
	b.WriteString(helpLine("/", "Search by name"))
	b.WriteString("\n")

	// Filters section
	b.WriteString(styles.InputLabel.Render("Filters"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab / shift+tab", "Move between filters"))
	b.WriteString(helpLine("space", "Toggle the selected scale"))
	b.WriteString(helpLine("← / →", "Change administration time"))
	b.WriteString(helpLine("↑ / ↓ + Enter", "Pick a language"))
	b.WriteString(helpLine("ctrl+x", "Clear selected scales"))
	b.WriteString(helpLine("ctrl+r", "Reset all filters"))
	b.WriteString(helpLine("esc", "Back to the table"))
	b.WriteString("\n")

	// Detail section
	b.WriteString(styles.InputLabel.Render("Details"))
	b.WriteString("\n")
	b.WriteString(helpLine("h / l / ← / →", "Switch data language"))
	b.WriteString(helpLine("j / k", "Select link"))
	b.WriteString(helpLine("o / Enter", "Open link in browser"))
	b.WriteString(helpLine("y", "Copy link to clipboard"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	// Reliability legend
	b.WriteString(styles.InputLabel.Render("Cronbach's α"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  0.91  reported value"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  —     not reported"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  N/A   scale not validated in this language"))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
