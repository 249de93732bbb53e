package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"hmiq/internal/adapters/tui/styles"
	"hmiq/internal/application/commands"
	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

// CatalogFocus is the sidebar control or table currently receiving keys
type CatalogFocus int

const (
	FocusTable CatalogFocus = iota
	FocusSearch
	FocusScaleSearch
	FocusScales
	FocusTime
	FocusLanguage
	focusCount
)

const (
	sidebarWidth      = 34
	maxVisibleScales  = 10
	maxVisibleOptions = 6
)

// timeCycle is the order the time selector steps through
var timeCycle = append([]domain.Time{domain.TimeAny}, domain.Times...)

// CatalogKeyMap defines key bindings for the catalog view
type CatalogKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	Open        key.Binding
	Toggle      key.Binding
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Search      key.Binding
	ClearScales key.Binding
	Reset       key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var CatalogKeys = CatalogKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	NextFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next filter"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	ClearScales: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear scales"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset filters"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to table"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CatalogModel is the filter sidebar plus the paginated questionnaire table
type CatalogModel struct {
	ViewState
	repo ports.CatalogRepository
	dark bool

	scaleFacet    []string
	languageFacet []string

	criteria domain.Criteria
	results  []domain.Questionnaire

	focus       CatalogFocus
	search      textinput.Model
	scaleSearch textinput.Model
	language    textinput.Model
	scaleCursor int
	langCursor  int // 0 is "All Languages"

	rows *Paginator
}

// NewCatalogModel creates the catalog view. dark selects link icon variants.
func NewCatalogModel(repo ports.CatalogRepository, dark bool) *CatalogModel {
	return &CatalogModel{
		repo:        repo,
		dark:        dark,
		search:      newInput("Search by name"),
		scaleSearch: newInput("Search scales"),
		language:    newInput("Type or select language"),
		rows:        NewPaginator(10),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = sidebarWidth - 6
	return ti
}

// Init loads the facets and the unfiltered table
func (m *CatalogModel) Init() tea.Cmd {
	return m.loadFacets
}

type facetsLoadedMsg struct {
	scales    []string
	languages []string
}

type catalogErrMsg struct {
	err error
}

func (m *CatalogModel) loadFacets() tea.Msg {
	ctx := context.Background()
	scales, err := commands.NewScaleFacetCommand(m.repo, "").Execute(ctx)
	if err != nil {
		return catalogErrMsg{err}
	}
	options, err := commands.NewLanguageFacetCommand(m.repo, "").Execute(ctx)
	if err != nil {
		return catalogErrMsg{err}
	}
	codes := make([]string, len(options))
	for i, o := range options {
		codes[i] = o.Code
	}
	return facetsLoadedMsg{scales: scales, languages: codes}
}

// refresh re-runs the filter with the current criteria
func (m *CatalogModel) refresh() {
	results, err := commands.NewListCommand(m.repo, m.criteria).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.results = results
	m.rows.SetTotal(len(results))
}

// SetSize updates the view dimensions and the table page size
func (m *CatalogModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.rows.SetPageSize(max(height-10, 3))
}

// Criteria returns the active filter criteria
func (m *CatalogModel) Criteria() domain.Criteria {
	return m.criteria
}

// Results returns the questionnaires currently shown
func (m *CatalogModel) Results() []domain.Questionnaire {
	return m.results
}

// Focus returns the control currently receiving keys
func (m *CatalogModel) Focus() CatalogFocus {
	return m.focus
}

// Selected returns the questionnaire under the table cursor
func (m *CatalogModel) Selected() *domain.Questionnaire {
	if len(m.results) == 0 {
		return nil
	}
	return &m.results[m.rows.Cursor()]
}

// VisibleScales returns the scale facet narrowed by the scale search text
func (m *CatalogModel) VisibleScales() []string {
	return domain.NarrowScales(m.scaleFacet, m.scaleSearch.Value())
}

// LanguageOptions returns the combo box entries for the typed language text
func (m *CatalogModel) LanguageOptions() []domain.LanguageOption {
	return domain.LanguageOptions(m.languageFacet, m.language.Value())
}

// Update handles messages for the catalog view
func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case facetsLoadedMsg:
		m.scaleFacet = msg.scales
		m.languageFacet = msg.languages
		m.refresh()
		return m, nil

	case catalogErrMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *CatalogModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Keys that work regardless of focus
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, CatalogKeys.NextFocus):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, CatalogKeys.PrevFocus):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, CatalogKeys.ClearScales):
		m.criteria.Scales = nil
		m.refresh()
		return nil
	case key.Matches(msg, CatalogKeys.Reset):
		m.resetAll()
		return nil
	case key.Matches(msg, CatalogKeys.Back) && m.focus != FocusTable:
		return m.setFocus(FocusTable)
	}

	switch m.focus {
	case FocusSearch:
		return m.updateSearch(msg)
	case FocusScaleSearch:
		return m.updateScaleSearch(msg)
	case FocusScales:
		m.updateScales(msg)
	case FocusTime:
		m.updateTime(msg)
	case FocusLanguage:
		return m.updateLanguage(msg)
	default:
		return m.updateTable(msg)
	}
	return nil
}

func (m *CatalogModel) setFocus(f CatalogFocus) tea.Cmd {
	m.search.Blur()
	m.scaleSearch.Blur()
	m.language.Blur()
	m.focus = f

	switch f {
	case FocusSearch:
		return m.search.Focus()
	case FocusScaleSearch:
		return m.scaleSearch.Focus()
	case FocusLanguage:
		m.langCursor = 0
		return m.language.Focus()
	}
	return nil
}

func (m *CatalogModel) resetAll() {
	m.criteria = domain.Criteria{}
	m.search.SetValue("")
	m.scaleSearch.SetValue("")
	m.language.SetValue("")
	m.scaleCursor = 0
	m.langCursor = 0
	m.rows.SetCursor(0)
	m.refresh()
}

func (m *CatalogModel) updateTable(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, CatalogKeys.Quit):
		return tea.Quit
	case key.Matches(msg, CatalogKeys.Up):
		m.rows.CursorUp()
	case key.Matches(msg, CatalogKeys.Down):
		m.rows.CursorDown()
	case key.Matches(msg, CatalogKeys.NextPage), key.Matches(msg, CatalogKeys.Right):
		m.rows.NextPage()
	case key.Matches(msg, CatalogKeys.PrevPage), key.Matches(msg, CatalogKeys.Left):
		m.rows.PrevPage()
	case key.Matches(msg, CatalogKeys.Search):
		return m.setFocus(FocusSearch)
	case key.Matches(msg, CatalogKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(msg, CatalogKeys.Open):
		if q := m.Selected(); q != nil {
			short := q.Short
			return func() tea.Msg { return SwitchToDetailMsg{Short: short} }
		}
	}
	return nil
}

func (m *CatalogModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		return m.setFocus(FocusTable)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.criteria.Search {
		m.criteria.Search = v
		m.rows.SetCursor(0)
		m.refresh()
	}
	return cmd
}

func (m *CatalogModel) updateScaleSearch(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyDown {
		return m.setFocus(FocusScales)
	}
	var cmd tea.Cmd
	m.scaleSearch, cmd = m.scaleSearch.Update(msg)
	m.scaleCursor = 0
	return cmd
}

func (m *CatalogModel) updateScales(msg tea.KeyMsg) {
	visible := m.VisibleScales()
	switch {
	case key.Matches(msg, CatalogKeys.Up):
		if m.scaleCursor > 0 {
			m.scaleCursor--
		}
	case key.Matches(msg, CatalogKeys.Down):
		if m.scaleCursor < len(visible)-1 {
			m.scaleCursor++
		}
	case key.Matches(msg, CatalogKeys.Toggle):
		if m.scaleCursor < len(visible) {
			m.criteria = m.criteria.ToggleScale(visible[m.scaleCursor])
			m.rows.SetCursor(0)
			m.refresh()
		}
	}
}

func (m *CatalogModel) updateTime(msg tea.KeyMsg) {
	step := 0
	switch {
	case key.Matches(msg, CatalogKeys.Right), key.Matches(msg, CatalogKeys.Toggle), key.Matches(msg, CatalogKeys.Down):
		step = 1
	case key.Matches(msg, CatalogKeys.Left), key.Matches(msg, CatalogKeys.Up):
		step = -1
	default:
		return
	}

	i := 0
	for j, t := range timeCycle {
		if t == m.criteria.Time {
			i = j
		}
	}
	m.criteria.Time = timeCycle[(i+step+len(timeCycle))%len(timeCycle)]
	m.rows.SetCursor(0)
	m.refresh()
}

func (m *CatalogModel) updateLanguage(msg tea.KeyMsg) tea.Cmd {
	options := m.LanguageOptions()

	switch msg.Type {
	case tea.KeyUp:
		if m.langCursor > 0 {
			m.langCursor--
		}
		return nil
	case tea.KeyDown:
		if m.langCursor < len(options) {
			m.langCursor++
		}
		return nil
	case tea.KeyEnter:
		code := ""
		if m.langCursor > 0 && m.langCursor <= len(options) {
			code = options[m.langCursor-1].Code
		}
		m.selectLanguage(code)
		return nil
	case tea.KeyBackspace, tea.KeyDelete:
		// Backspace on an empty input drops the selected language
		if m.language.Value() == "" && m.criteria.Language != "" {
			m.selectLanguage("")
			return nil
		}
	}

	var cmd tea.Cmd
	before := m.language.Value()
	m.language, cmd = m.language.Update(msg)
	if m.language.Value() != before {
		m.langCursor = 0
		// Typing replaces a previous selection
		if m.criteria.Language != "" {
			m.criteria.Language = ""
			m.refresh()
		}
	}
	return cmd
}

func (m *CatalogModel) selectLanguage(code string) {
	m.criteria.Language = code
	m.language.SetValue("")
	m.langCursor = 0
	m.rows.SetCursor(0)
	m.refresh()
}

// View renders the catalog view
func (m *CatalogModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("HMI Questionnaires"))
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderTable())
	b.WriteString(body)
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())

	return styles.App.Render(b.String())
}

func (m *CatalogModel) renderSidebar() string {
	var b strings.Builder

	section := func(title string, f CatalogFocus) {
		marker := "  "
		if m.focus == f {
			marker = styles.HelpKey.Render("> ")
		}
		b.WriteString(marker + styles.SectionTitle.Render(title) + "\n")
	}
	input := func(ti textinput.Model, f CatalogFocus) {
		style := styles.InputField
		if m.focus == f {
			style = styles.InputFocused
		}
		b.WriteString(style.Width(sidebarWidth - 4).Render(ti.View()))
		b.WriteString("\n")
	}

	section("Name", FocusSearch)
	input(m.search, FocusSearch)

	section("Scales", FocusScaleSearch)
	input(m.scaleSearch, FocusScaleSearch)
	b.WriteString(m.renderScaleList())
	if n := len(m.criteria.Scales); n > 0 {
		b.WriteString(RenderMuted(fmt.Sprintf("%d selected · ctrl+x clears", n)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	section("Time", FocusTime)
	b.WriteString("  ‹ " + m.criteria.Time.Label() + " ›\n\n")

	section("Language", FocusLanguage)
	b.WriteString(m.renderLanguageCombo())

	style := styles.Sidebar
	if m.focus != FocusTable {
		style = styles.SidebarFocused
	}
	return style.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *CatalogModel) renderScaleList() string {
	visible := m.VisibleScales()
	if len(visible) == 0 {
		return RenderMuted("  no matching scales") + "\n"
	}

	// Window the list around the cursor
	start := 0
	if m.scaleCursor >= maxVisibleScales {
		start = m.scaleCursor - maxVisibleScales + 1
	}
	end := min(start+maxVisibleScales, len(visible))

	var b strings.Builder
	for i := start; i < end; i++ {
		name := visible[i]
		line := RenderCheckbox(Truncate(name, sidebarWidth-8), m.criteria.HasScale(name))
		if m.focus == FocusScales && i == m.scaleCursor {
			line = styles.RowSelected.Render(fmt.Sprintf("%s %s", checkMark(m.criteria.HasScale(name)), Truncate(name, sidebarWidth-8)))
		}
		b.WriteString("  " + line + "\n")
	}
	if rest := len(visible) - end; rest > 0 {
		b.WriteString(RenderMuted(fmt.Sprintf("  … %d more", rest)) + "\n")
	}
	return b.String()
}

func checkMark(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func (m *CatalogModel) renderLanguageCombo() string {
	var b strings.Builder

	style := styles.InputField
	if m.focus == FocusLanguage {
		style = styles.InputFocused
	}
	field := m.language.View()
	if m.criteria.Language != "" && m.language.Value() == "" {
		field = domain.LanguageName(m.criteria.Language)
	}
	b.WriteString(style.Width(sidebarWidth - 4).Render(field))
	b.WriteString("\n")

	if m.focus != FocusLanguage {
		return b.String()
	}

	options := m.LanguageOptions()
	labels := make([]string, 0, len(options)+1)
	labels = append(labels, "All Languages")
	for _, o := range options {
		labels = append(labels, o.Name)
	}

	start := 0
	if m.langCursor >= maxVisibleOptions {
		start = m.langCursor - maxVisibleOptions + 1
	}
	end := min(start+maxVisibleOptions, len(labels))
	for i := start; i < end; i++ {
		if i == m.langCursor {
			b.WriteString("  " + styles.RowSelected.Render(labels[i]) + "\n")
		} else {
			b.WriteString("  " + labels[i] + "\n")
		}
	}
	return b.String()
}

func (m *CatalogModel) renderTable() string {
	if len(m.results) == 0 {
		if m.criteria.IsZero() {
			return lipgloss.NewStyle().Padding(1, 2).Render(RenderMuted("The catalog is empty."))
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(
			RenderMuted("No questionnaires match the current filters.\n") +
				RenderMuted("Press ctrl+r to reset all filters."),
		)
	}

	start, end := m.rows.VisibleRange()
	cursor := m.rows.CursorInPage()

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("Abbr.", "Name", "Scales", "Time", "Languages", "Year", "Items", "Links").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.TableHeader.Padding(0, 1)
			case row == cursor:
				return styles.RowSelected.Padding(0, 1)
			default:
				return styles.Row.Padding(0, 1)
			}
		})

	nameWidth := max(m.Width-sidebarWidth-95, 18)
	for i := start; i < end; i++ {
		q := &m.results[i]
		t.Row(
			q.Short,
			Truncate(q.Name, nameWidth),
			scalesCell(q),
			q.TimeLabels(),
			languagesCell(q),
			optionalInt(q.Metadata.Year),
			optionalInt(q.Metadata.Items),
			m.linkIcons(q),
		)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	status := fmt.Sprintf("%d questionnaire(s)", len(m.results))
	if m.rows.TotalPages() > 1 {
		status += " · page " + m.rows.View()
	}
	b.WriteString(RenderMuted(status))
	return b.String()
}

func (m *CatalogModel) renderHelp() string {
	switch m.focus {
	case FocusTable:
		return RenderHelpLine(CatalogKeys.Up, CatalogKeys.Down, CatalogKeys.Open, CatalogKeys.NextFocus,
			CatalogKeys.Search, CatalogKeys.Reset, CatalogKeys.Help, CatalogKeys.Quit)
	case FocusScales:
		return RenderHelpLine(CatalogKeys.Up, CatalogKeys.Down, CatalogKeys.Toggle, CatalogKeys.ClearScales,
			CatalogKeys.NextFocus, CatalogKeys.Back)
	case FocusTime:
		return RenderHelpLine(CatalogKeys.Left, CatalogKeys.Right, CatalogKeys.NextFocus, CatalogKeys.Back)
	default:
		return RenderHelpLine(CatalogKeys.NextFocus, CatalogKeys.PrevFocus, CatalogKeys.Reset, CatalogKeys.Back)
	}
}

func (m *CatalogModel) linkIcons(q *domain.Questionnaire) string {
	var icons []string
	for _, category := range q.LinkCategories() {
		if icon := styles.LinkIcon(category, m.dark); icon != "" {
			icons = append(icons, icon)
		}
	}
	return strings.Join(icons, " ")
}

func scalesCell(q *domain.Questionnaire) string {
	names, rest := q.ScalePreview(3)
	cell := Truncate(strings.Join(names, ", "), 36)
	if rest > 0 {
		cell += fmt.Sprintf(" +%d", rest)
	}
	return cell
}

func languagesCell(q *domain.Questionnaire) string {
	codes, rest := q.LanguagePreview(10)
	cell := strings.Join(codes, ", ")
	if rest > 0 {
		cell += fmt.Sprintf(" +%d more", rest)
	}
	return cell
}

func optionalInt(v *int) string {
	if v == nil {
		return "—"
	}
	return strconv.Itoa(*v)
}
