package domain

import (
	"slices"
	"strings"
)

// Criteria narrows the catalog. The zero value matches everything.
type Criteria struct {
	Search   string   `json:"search,omitempty"`   // case-insensitive substring of the name
	Scales   []string `json:"scales,omitempty"`   // exact scale names, any of them
	Time     Time     `json:"time,omitempty"`     // TimeAny = unconstrained
	Language string   `json:"language,omitempty"` // "" = unconstrained
}

// IsZero reports whether no criterion is set
func (c Criteria) IsZero() bool {
	return c.Search == "" && len(c.Scales) == 0 && c.Time == TimeAny && c.Language == ""
}

// HasScale reports whether name is part of the scale selection
func (c Criteria) HasScale(name string) bool {
	return slices.Contains(c.Scales, name)
}

// ToggleScale returns a copy of c with name added to or removed from the scale selection
func (c Criteria) ToggleScale(name string) Criteria {
	if i := slices.Index(c.Scales, name); i >= 0 {
		c.Scales = slices.Delete(slices.Clone(c.Scales), i, i+1)
		return c
	}
	c.Scales = append(slices.Clone(c.Scales), name)
	return c
}

// Filter returns the questionnaires matching every criterion, in catalog order.
// The catalog is not modified.
func Filter(catalog []Questionnaire, c Criteria) []Questionnaire {
	if c.IsZero() {
		return append(make([]Questionnaire, 0, len(catalog)), catalog...)
	}
	out := make([]Questionnaire, 0, len(catalog))
	for i := range catalog {
		if c.Matches(&catalog[i]) {
			out = append(out, catalog[i])
		}
	}
	return out
}

// Matches reports whether q satisfies all criteria
func (c Criteria) Matches(q *Questionnaire) bool {
	return c.matchesName(q) && c.matchesScales(q) && c.matchesTime(q) && c.matchesLanguage(q)
}

func (c Criteria) matchesName(q *Questionnaire) bool {
	if c.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(q.Name), strings.ToLower(c.Search))
}

func (c Criteria) matchesScales(q *Questionnaire) bool {
	if len(c.Scales) == 0 {
		return true
	}
	for _, d := range q.Data {
		for _, s := range d.Scales {
			if slices.Contains(c.Scales, s.Name) {
				return true
			}
		}
	}
	return false
}

func (c Criteria) matchesTime(q *Questionnaire) bool {
	return c.Time == TimeAny || q.HasTime(c.Time)
}

func (c Criteria) matchesLanguage(q *Questionnaire) bool {
	return c.Language == "" || q.HasLanguage(c.Language)
}
