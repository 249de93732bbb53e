package mcp

import (
	"fmt"
	"strings"

	"hmiq/internal/domain"
)

func formatQuestionnaire(q domain.Questionnaire) string {
	scales, more := q.ScalePreview(3)
	scaleText := strings.Join(scales, ", ")
	if more > 0 {
		scaleText += fmt.Sprintf(" +%d", more)
	}
	return fmt.Sprintf("%s  %s  [%s]  scales: %s  languages: %d",
		q.Short, q.Name, q.TimeLabels(), scaleText, len(q.Metadata.Languages))
}

func formatDetail(q *domain.Questionnaire, d domain.Detail) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%s)\n", q.Name, q.Short)
	fmt.Fprintf(&sb, "Time: %s\n", q.TimeLabels())
	if q.Metadata.Year != nil {
		fmt.Fprintf(&sb, "Year: %d\n", *q.Metadata.Year)
	}
	if q.Metadata.Items != nil {
		fmt.Fprintf(&sb, "Items: %d\n", *q.Metadata.Items)
	}
	if q.Metadata.ResponseFormat != "" {
		fmt.Fprintf(&sb, "Response format: %s\n", q.Metadata.ResponseFormat.Label())
	}
	fmt.Fprintf(&sb, "Languages: %s\n", strings.Join(domain.LanguageNames(q.Metadata.Languages), ", "))
	if len(q.Domain) > 0 {
		fmt.Fprintf(&sb, "Domains: %s\n", strings.Join(q.Domain, ", "))
	}
	if q.License != "" {
		fmt.Fprintf(&sb, "License: %s\n", q.License)
	}

	for _, cat := range q.LinkCategories() {
		for _, l := range q.Links[cat] {
			fmt.Fprintf(&sb, "%s: %s <%s>\n", domain.CapitalizeCategory(cat), l.Title, l.URL)
		}
	}

	if d.HasData() {
		fmt.Fprintf(&sb, "\nReliability (%s; available: %s)\n", domain.LanguageName(d.Language), strings.Join(domain.LanguageNames(d.Languages), ", "))
		for _, s := range d.Scales {
			fmt.Fprintf(&sb, "  %s: %s\n", s.Name, alphaText(s))
		}
		if p := d.Participants; p != nil {
			fmt.Fprintf(&sb, "Participants: n=%d", p.N)
			if len(p.Types) > 0 {
				fmt.Fprintf(&sb, " (%s)", p.TypesLabel())
			}
			sb.WriteByte('\n')
		}
	}

	for _, note := range q.Notes {
		fmt.Fprintf(&sb, "Note: %s\n", note)
	}
	return sb.String()
}

func alphaText(s domain.ScaleReliability) string {
	switch s.State {
	case domain.AlphaReported:
		return "α = " + s.Display()
	default:
		return s.State.String()
	}
}
