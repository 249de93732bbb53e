package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"hmiq/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderQuestionnaires(w io.Writer, qs []domain.Questionnaire) {
	if len(qs) == 0 {
		fmt.Fprintln(w, "No questionnaires match the current filters.")
		return
	}

	t := newTable("Abbr.", "Name", "Scales", "Time", "Languages", "Year", "Items")
	for _, q := range qs {
		t.Row(q.Short, q.Name, scaleCell(q), q.TimeLabels(), languageCell(q), optInt(q.Metadata.Year), optInt(q.Metadata.Items))
	}
	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d questionnaire(s)", len(qs))))
}

// scaleCell mirrors the catalog table: count, first three names, overflow
func scaleCell(q domain.Questionnaire) string {
	names, more := q.ScalePreview(3)
	cell := fmt.Sprintf("(%d) %s", q.ScaleCount(), strings.Join(names, ", "))
	if more > 0 {
		cell += fmt.Sprintf(" +%d", more)
	}
	return cell
}

func languageCell(q domain.Questionnaire) string {
	codes, more := q.LanguagePreview(10)
	cell := strings.Join(codes, ", ")
	if more > 0 {
		cell += fmt.Sprintf(" +%d more", more)
	}
	return cell
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func renderDetail(w io.Writer, q *domain.Questionnaire, d domain.Detail) {
	fmt.Fprintf(w, "%s (%s)\n\n", titleStyle.Render(q.Name), q.Short)

	info := newTable("Field", "Value")
	info.Row("Time", q.TimeLabels())
	info.Row("Year", optInt(q.Metadata.Year))
	info.Row("Items", optInt(q.Metadata.Items))
	if q.Metadata.ResponseFormat != "" {
		info.Row("Response format", q.Metadata.ResponseFormat.Label())
	}
	info.Row("Languages", strings.Join(domain.LanguageNames(q.Metadata.Languages), ", "))
	if q.License != "" {
		info.Row("License", q.License)
	}
	fmt.Fprintln(w, info.String())

	if cats := q.LinkCategories(); len(cats) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Links"))
		for _, cat := range cats {
			for _, l := range q.Links[cat] {
				fmt.Fprintf(w, "  %s: %s\n    %s\n", domain.CapitalizeCategory(cat), l.Title, l.URL)
			}
		}
		fmt.Fprintln(w)
	}

	if d.HasData() {
		fmt.Fprintf(w, "%s  language: %s  available: %s\n",
			titleStyle.Render("Quality Information"), domain.LanguageName(d.Language), strings.Join(domain.LanguageNames(d.Languages), ", "))
		scales := newTable("Scale", "Cronbach's α")
		for _, s := range d.Scales {
			scales.Row(s.Name, s.Display())
		}
		fmt.Fprintln(w, scales.String())

		if p := d.Participants; p != nil {
			fmt.Fprintf(w, "Sample size (N): %d\n", p.N)
			if len(p.Types) > 0 {
				fmt.Fprintf(w, "Participant type(s): %s\n", p.TypesLabel())
			}
		}
	}

	if len(q.Domain) > 0 {
		fmt.Fprintf(w, "\n%s %s\n", titleStyle.Render("Domains:"), strings.Join(q.Domain, ", "))
	}
	if len(q.Notes) > 0 {
		fmt.Fprintln(w, "\n"+titleStyle.Render("Notes"))
		for _, n := range q.Notes {
			fmt.Fprintf(w, "  - %s\n", n)
		}
	}
}
