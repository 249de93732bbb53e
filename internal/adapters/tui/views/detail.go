package views

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"hmiq/internal/adapters/tui/styles"
	"hmiq/internal/application/commands"
	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

// DetailKeyMap defines key bindings for the detail view
type DetailKeyMap struct {
	PrevLanguage key.Binding
	NextLanguage key.Binding
	Up           key.Binding
	Down         key.Binding
	OpenLink     key.Binding
	CopyLink     key.Binding
	Close        key.Binding
	Help         key.Binding
}

var DetailKeys = DetailKeyMap{
	PrevLanguage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev language"),
	),
	NextLanguage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next language"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "prev link"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next link"),
	),
	OpenLink: key.NewBinding(
		key.WithKeys("o", "enter"),
		key.WithHelp("o", "open link"),
	),
	CopyLink: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

type detailLink struct {
	Category string
	domain.Link
}

// DetailModel shows one questionnaire with its per-language quality data
type DetailModel struct {
	ViewState
	repo     ports.CatalogRepository
	opener   ports.LinkOpener
	copyText func(string) error
	dark     bool

	questionnaire *domain.Questionnaire
	detail        domain.Detail
	links         []detailLink
	linkCursor    int
}

// NewDetailModel creates the detail view. opener may be nil, which disables opening links.
func NewDetailModel(repo ports.CatalogRepository, opener ports.LinkOpener, dark bool) *DetailModel {
	return &DetailModel{
		repo:     repo,
		opener:   opener,
		copyText: clipboard.WriteAll,
		dark:     dark,
	}
}

// Load selects the questionnaire to show, starting on its default language
func (m *DetailModel) Load(short string) error {
	res, err := commands.NewShowCommand(m.repo, short, "").Execute(context.Background())
	if err != nil {
		return err
	}

	m.questionnaire = res.Questionnaire
	m.detail = res.Detail
	m.linkCursor = 0
	m.links = m.links[:0]
	for _, category := range res.Questionnaire.LinkCategories() {
		for _, l := range res.Questionnaire.Links[category] {
			m.links = append(m.links, detailLink{Category: category, Link: l})
		}
	}
	m.ClearMessage()
	return nil
}

// Detail returns the resolved detail for the selected language
func (m *DetailModel) Detail() domain.Detail {
	return m.detail
}

// SelectLanguage switches the scale table to language
func (m *DetailModel) SelectLanguage(language string) {
	if m.questionnaire == nil {
		return
	}
	res, err := commands.NewShowCommand(m.repo, m.questionnaire.Short, language).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.detail = res.Detail
}

func (m *DetailModel) stepLanguage(step int) {
	langs := m.detail.Languages
	if len(langs) < 2 {
		return
	}
	i := max(slices.Index(langs, m.detail.Language), 0)
	m.SelectLanguage(langs[(i+step+len(langs))%len(langs)])
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case LinkOpenedMsg:
		switch {
		case msg.Err != nil:
			m.SetMessage(msg.Err.Error(), true)
		case msg.Copied:
			m.SetMessage("Copied "+msg.URL, false)
		default:
			m.SetMessage("Opened "+msg.URL, false)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, DetailKeys.Close):
			return m, func() tea.Msg { return SwitchToCatalogMsg{} }
		case key.Matches(msg, DetailKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		case key.Matches(msg, DetailKeys.PrevLanguage):
			m.stepLanguage(-1)
		case key.Matches(msg, DetailKeys.NextLanguage):
			m.stepLanguage(1)
		case key.Matches(msg, DetailKeys.Up):
			if m.linkCursor > 0 {
				m.linkCursor--
			}
		case key.Matches(msg, DetailKeys.Down):
			if m.linkCursor < len(m.links)-1 {
				m.linkCursor++
			}
		case key.Matches(msg, DetailKeys.OpenLink):
			return m, m.openLink()
		case key.Matches(msg, DetailKeys.CopyLink):
			return m, m.copyLink()
		}
	}
	return m, nil
}

func (m *DetailModel) selectedLink() (detailLink, bool) {
	if m.linkCursor < 0 || m.linkCursor >= len(m.links) {
		return detailLink{}, false
	}
	return m.links[m.linkCursor], true
}

func (m *DetailModel) openLink() tea.Cmd {
	l, ok := m.selectedLink()
	if !ok || m.opener == nil {
		return nil
	}
	opener := m.opener
	return func() tea.Msg {
		return LinkOpenedMsg{URL: l.URL, Err: opener.Open(l.URL)}
	}
}

func (m *DetailModel) copyLink() tea.Cmd {
	l, ok := m.selectedLink()
	if !ok {
		return nil
	}
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(l.URL); err != nil {
			return LinkOpenedMsg{URL: l.URL, Copied: true, Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return LinkOpenedMsg{URL: l.URL, Copied: true}
	}
}

// View renders the detail view
func (m *DetailModel) View() string {
	q := m.questionnaire
	if q == nil {
		return styles.App.Render(RenderMuted("No questionnaire selected"))
	}

	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("%s (%s)", q.Name, q.Short)))
	b.WriteString("\n")

	// Basic information
	b.WriteString(styles.SectionTitle.Render("Basic information"))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("Time", q.TimeLabels()) + "\n")
	if q.Metadata.Year != nil {
		b.WriteString(RenderLabelValue("Year", strconv.Itoa(*q.Metadata.Year)) + "\n")
	}
	if q.Metadata.Items != nil {
		b.WriteString(RenderLabelValue("Items", strconv.Itoa(*q.Metadata.Items)) + "\n")
	}
	if q.Metadata.ResponseFormat != "" {
		b.WriteString(RenderLabelValue("Response format", q.Metadata.ResponseFormat.Label()) + "\n")
	}
	b.WriteString(RenderLabelValue("Languages", strings.Join(domain.LanguageNames(q.Metadata.Languages), ", ")) + "\n")
	if len(q.Domain) > 0 {
		b.WriteString(RenderLabelValue("Domain", strings.Join(q.Domain, ", ")) + "\n")
	}
	if q.License != "" {
		b.WriteString(RenderLabelValue("License", q.License) + "\n")
	}
	b.WriteString("\n")

	if len(m.links) > 0 {
		b.WriteString(styles.SectionTitle.Render("Links"))
		b.WriteString("\n")
		b.WriteString(m.renderLinks())
		b.WriteString("\n")
	}

	b.WriteString(styles.SectionTitle.Render("Quality information"))
	b.WriteString("\n")
	b.WriteString(m.renderQuality())

	if len(q.Notes) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.SectionTitle.Render("Notes"))
		b.WriteString("\n")
		for _, n := range q.Notes {
			b.WriteString(RenderMuted("  • "+n) + "\n")
		}
	}

	b.WriteString("\n")
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	b.WriteString(RenderHelpLine(DetailKeys.PrevLanguage, DetailKeys.NextLanguage, DetailKeys.Down,
		DetailKeys.OpenLink, DetailKeys.CopyLink, DetailKeys.Close))

	modal := styles.Modal
	if m.Width > 8 {
		modal = modal.Width(m.Width - 8)
	}
	return styles.App.Render(modal.Render(b.String()))
}

func (m *DetailModel) renderLinks() string {
	var b strings.Builder
	current := ""
	for i, l := range m.links {
		if l.Category != current {
			current = l.Category
			icon := styles.LinkIcon(current, m.dark)
			if icon != "" {
				icon += " "
			}
			b.WriteString("  " + icon + styles.InputLabel.Render(domain.CapitalizeCategory(current)) + "\n")
		}
		title := l.Title
		if title == "" {
			title = l.URL
		}
		line := fmt.Sprintf("%s  %s", title, RenderMuted(l.URL))
		if i == m.linkCursor {
			line = styles.LinkSelected.Render(title) + "  " + styles.Link.Render(l.URL)
		}
		b.WriteString("    " + line + "\n")
	}
	return b.String()
}

func (m *DetailModel) renderQuality() string {
	d := m.detail
	if !d.HasData() {
		return RenderMuted("  No reliability data available") + "\n"
	}

	var b strings.Builder

	// Language selector
	parts := make([]string, len(d.Languages))
	for i, code := range d.Languages {
		name := domain.LanguageName(code)
		if code == d.Language {
			parts[i] = styles.RowSelected.Render(" " + name + " ")
		} else {
			parts[i] = " " + name + " "
		}
	}
	b.WriteString("  " + strings.Join(parts, RenderMuted("│")) + "\n")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Border)).
		Headers("Scale", "Cronbach's α").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader.Padding(0, 1)
			}
			if col == 1 && row >= 0 && row < len(d.Scales) {
				return alphaStyle(d.Scales[row].State).Padding(0, 1)
			}
			return styles.Row.Padding(0, 1)
		})
	for _, s := range d.Scales {
		t.Row(s.Name, s.Display())
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	if p := d.Participants; p != nil {
		value := fmt.Sprintf("n = %d", p.N)
		if len(p.Types) > 0 {
			value += " (" + p.TypesLabel() + ")"
		}
		b.WriteString(RenderLabelValue("Participants", value) + "\n")
	}
	return b.String()
}

func alphaStyle(state domain.AlphaState) lipgloss.Style {
	switch state {
	case domain.AlphaReported:
		return styles.AlphaReported
	case domain.AlphaNotReported:
		return styles.AlphaNotReported
	default:
		return styles.AlphaNoData
	}
}
