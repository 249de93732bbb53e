package domain

import (
	"slices"
	"strconv"
	"strings"
)

// AlphaState tells whether a reliability figure exists for a scale in a language
type AlphaState int

const (
	AlphaReported    AlphaState = iota
	AlphaNotReported            // scale exists in the language, alpha missing
	AlphaNoData                 // the language lacks the scale or has no entry at all
)

// MarshalText renders the state as its label in JSON
func (s AlphaState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s AlphaState) String() string {
	switch s {
	case AlphaReported:
		return "reported"
	case AlphaNotReported:
		return "not reported"
	case AlphaNoData:
		return "no data"
	default:
		return "unknown"
	}
}

// ScaleReliability is one row of the detail scale table
type ScaleReliability struct {
	Name  string     `json:"name"`
	State AlphaState `json:"state"`
	Alpha *float64   `json:"alpha,omitempty"` // set only when reported
}

// Display renders the alpha cell: the value, "—" when not reported, "N/A" when there is no data
func (s ScaleReliability) Display() string {
	switch s.State {
	case AlphaReported:
		if s.Alpha == nil {
			return "—"
		}
		return strconv.FormatFloat(*s.Alpha, 'f', -1, 64)
	case AlphaNotReported:
		return "—"
	default:
		return "N/A"
	}
}

// ParticipantSummary describes the validation sample for the selected language
type ParticipantSummary struct {
	N     int      `json:"n"`
	Types []string `json:"types"`
}

// TypesLabel joins the participant types with ", "
func (p ParticipantSummary) TypesLabel() string {
	return strings.Join(p.Types, ", ")
}

// Detail is the per-language quality view of one questionnaire
type Detail struct {
	Languages    []string            `json:"languages"` // available data languages, sorted
	Language     string              `json:"language"`  // the selected one
	Scales       []ScaleReliability  `json:"scales"`
	Participants *ParticipantSummary `json:"participants,omitempty"`
}

// HasData reports whether a scale table can be shown at all
func (d Detail) HasData() bool {
	return len(d.Languages) > 0
}

// DataLanguages returns the distinct languages of q's data entries, sorted ascending
func DataLanguages(q *Questionnaire) []string {
	var langs []string
	for _, d := range q.Data {
		if !slices.Contains(langs, d.Language) {
			langs = append(langs, d.Language)
		}
	}
	slices.Sort(langs)
	return langs
}

// DefaultLanguage is the first available data language, or "" when there is none
func DefaultLanguage(q *Questionnaire) string {
	langs := DataLanguages(q)
	if len(langs) == 0 {
		return ""
	}
	return langs[0]
}

// ResolveDetail builds the scale table for language. An empty language selects the default.
// Scales are the union over all languages in first-appearance order; values come only from
// the selected language.
func ResolveDetail(q *Questionnaire, language string) Detail {
	langs := DataLanguages(q)
	if len(langs) == 0 {
		return Detail{}
	}
	if language == "" {
		language = DefaultLanguage(q)
	}

	detail := Detail{Languages: langs, Language: language}

	var selected *LocalizedData
	for i := range q.Data {
		if q.Data[i].Language == language {
			selected = &q.Data[i]
			break
		}
	}

	for _, name := range unionScaleNames(q) {
		detail.Scales = append(detail.Scales, reliabilityOf(selected, name))
	}

	if selected != nil && selected.ParticipantDetails != nil {
		detail.Participants = &ParticipantSummary{
			N:     selected.ParticipantDetails.N,
			Types: slices.Clone(selected.ParticipantDetails.Types),
		}
	}
	return detail
}

func unionScaleNames(q *Questionnaire) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, d := range q.Data {
		for _, s := range d.Scales {
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			names = append(names, s.Name)
		}
	}
	return names
}

func reliabilityOf(data *LocalizedData, name string) ScaleReliability {
	row := ScaleReliability{Name: name, State: AlphaNoData}
	if data == nil {
		return row
	}
	for _, s := range data.Scales {
		if s.Name != name {
			continue
		}
		if s.CronbachsAlpha == nil {
			row.State = AlphaNotReported
			return row
		}
		row.State = AlphaReported
		alpha := *s.CronbachsAlpha
		row.Alpha = &alpha
		return row
	}
	return row
}
