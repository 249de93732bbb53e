package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary   = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"} // Purple
	Secondary = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"} // Green
	Accent    = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"} // Blue
	Muted     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"} // Gray
	Warning   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"} // Amber
	Error     = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"} // Red
	Border    = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Sidebar
	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1).
		MarginRight(1)

	SidebarFocused = Sidebar.
			BorderForeground(Primary)

	SectionTitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Checked   = lipgloss.NewStyle().Foreground(Secondary)
	Unchecked = lipgloss.NewStyle().Foreground(Muted)

	// Table
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Border)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Row = lipgloss.NewStyle()

	// Detail modal
	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	Link = lipgloss.NewStyle().
		Foreground(Accent).
		Underline(true)

	LinkSelected = lipgloss.NewStyle().
			Background(Accent).
			Foreground(White)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Reliability values
	AlphaReported    = lipgloss.NewStyle().Foreground(Secondary)
	AlphaNotReported = lipgloss.NewStyle().Foreground(Warning)
	AlphaNoData      = lipgloss.NewStyle().Foreground(Muted).Italic(true)
)

// icons per link category: light variant, dark variant
var linkIcons = map[string][2]string{
	"website": {"◎", "◉"},
	"doi":     {"▯", "▮"},
	"osf":     {"○", "●"},
	"git":     {"◇", "◆"},
	"github":  {"◇", "◆"},
	"pdf":     {"▭", "▬"},
}

// LinkIcon returns the glyph shown for a link category, or "" when the
// category has none. Dark terminals get the filled variant.
func LinkIcon(category string, dark bool) string {
	icons, ok := linkIcons[strings.ToLower(category)]
	if !ok {
		return ""
	}
	if dark {
		return icons[1]
	}
	return icons[0]
}

// IsDark reports whether the terminal has a dark background
func IsDark() bool {
	return lipgloss.HasDarkBackground()
}
