package application

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"hmiq/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: "is required",
		}
	}
	return nil
}

// ValidateCatalog checks every entry and that abbreviations are unique ignoring case,
// since lookups fold case.
// All violations are reported together, wrapped with ErrInvalidCatalog.
func ValidateCatalog(catalog []domain.Questionnaire) error {
	var errs []error
	seen := make(map[string]int, len(catalog))

	for i := range catalog {
		q := &catalog[i]
		errs = append(errs, ValidateQuestionnaire(i, q)...)

		key := strings.ToLower(strings.TrimSpace(q.Short))
		if key == "" {
			continue
		}
		if first, ok := seen[key]; ok {
			errs = append(errs, &ValidationError{
				Field:   entryField(i, q, "short"),
				Message: fmt.Sprintf("duplicate abbreviation, first used by entry %d", first),
			})
			continue
		}
		seen[key] = i
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}

// ValidateQuestionnaire returns every structural problem of one entry
func ValidateQuestionnaire(index int, q *domain.Questionnaire) []error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: entryField(index, q, field), Message: fmt.Sprintf(format, args...)})
	}

	if err := ValidateRequired(entryField(index, q, "name"), q.Name); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateRequired(entryField(index, q, "short"), q.Short); err != nil {
		errs = append(errs, err)
	}

	m := q.Metadata
	if len(m.Time) == 0 {
		add("metadata.time", "at least one administration time is required")
	}
	for _, t := range m.Time {
		if !t.Valid() {
			add("metadata.time", "unknown time %q", t)
		}
	}
	if m.ResponseFormat != "" && !m.ResponseFormat.Valid() {
		add("metadata.responseFormat", "unknown response format %q", m.ResponseFormat)
	}
	if m.Year != nil && *m.Year < 0 {
		add("metadata.year", "must not be negative")
	}
	if m.Items != nil && *m.Items < 0 {
		add("metadata.items", "must not be negative")
	}
	if len(m.Languages) == 0 {
		add("metadata.languages", "at least one language is required")
	}

	for di, d := range q.Data {
		field := fmt.Sprintf("data[%d]", di)
		if !slices.Contains(m.Languages, d.Language) {
			add(field+".language", "%q is not listed in metadata.languages", d.Language)
		}
		if len(d.Scales) == 0 {
			add(field+".scales", "at least one scale is required")
		}
		for si, s := range d.Scales {
			if strings.TrimSpace(s.Name) == "" {
				add(fmt.Sprintf("%s.scales[%d].name", field, si), "is required")
			}
			if a := s.CronbachsAlpha; a != nil && !(*a >= 0 && *a <= 1) {
				add(fmt.Sprintf("%s.scales[%d].cronbachsAlpha", field, si), "%v is outside [0, 1]", *s.CronbachsAlpha)
			}
		}
		if p := d.ParticipantDetails; p != nil && p.N < 0 {
			add(field+".participantDetails.n", "must not be negative")
		}
	}

	for category, links := range q.Links {
		for li, l := range links {
			if strings.TrimSpace(l.URL) == "" {
				add(fmt.Sprintf("links.%s[%d].url", category, li), "is required")
			}
		}
	}

	return errs
}

func entryField(index int, q *domain.Questionnaire, field string) string {
	if q.Short != "" {
		return fmt.Sprintf("questionnaires[%s].%s", q.Short, field)
	}
	return fmt.Sprintf("questionnaires[%d].%s", index, field)
}

// ParseCriteria turns raw user input into filter criteria.
// Language codes are upper-cased and repeated scales collapse.
func ParseCriteria(search string, scales []string, timeValue, language string) (domain.Criteria, error) {
	t, err := domain.ParseTime(timeValue)
	if err != nil {
		return domain.Criteria{}, &CriteriaError{Field: "time", Value: timeValue, Err: err}
	}

	c := domain.Criteria{
		Search:   strings.TrimSpace(search),
		Time:     t,
		Language: strings.ToUpper(strings.TrimSpace(language)),
	}
	for _, s := range scales {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(c.Scales, s) {
			c.Scales = append(c.Scales, s)
		}
	}
	return c, nil
}

// SplitList splits a comma separated argument, dropping empty parts
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
