package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Time is the point in a study at which a questionnaire is administered
type Time string

const (
	TimeAny        Time = "" // no constraint when used as a filter
	TimePreStudy   Time = "PreStudy"
	TimePostStudy  Time = "PostStudy"
	TimeStandalone Time = "Standalone"
)

// Times lists the administration timings in display order
var Times = []Time{TimePreStudy, TimePostStudy, TimeStandalone}

// Label returns a human-readable label for the timing
func (t Time) Label() string {
	switch t {
	case TimeAny:
		return "All"
	case TimePreStudy:
		return "Pre-study"
	case TimePostStudy:
		return "Post-study"
	case TimeStandalone:
		return "Standalone"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known timings
func (t Time) Valid() bool {
	return slices.Contains(Times, t)
}

// ParseTime accepts "PostStudy", "post-study", "poststudy" and similar spellings.
// An empty string or "all" yields TimeAny.
func ParseTime(s string) (Time, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s)))
	if norm == "" || norm == "all" || norm == "any" {
		return TimeAny, nil
	}
	for _, t := range Times {
		if strings.ToLower(string(t)) == norm {
			return t, nil
		}
	}
	return TimeAny, fmt.Errorf("unknown time %q (want one of PreStudy, PostStudy, Standalone)", s)
}

// ResponseFormat tags the answer format of a questionnaire's items
type ResponseFormat string

const (
	ResponseLikert5  ResponseFormat = "Likert5"
	ResponseLikert7  ResponseFormat = "Likert7"
	ResponseSemDiff5 ResponseFormat = "SemDiff5"
	ResponseSemDiff7 ResponseFormat = "SemDiff7"
)

// Valid reports whether f is a known response format
func (f ResponseFormat) Valid() bool {
	switch f {
	case ResponseLikert5, ResponseLikert7, ResponseSemDiff5, ResponseSemDiff7:
		return true
	}
	return false
}

// Label returns a readable form such as "Likert (5-point)"
func (f ResponseFormat) Label() string {
	switch f {
	case ResponseLikert5:
		return "Likert (5-point)"
	case ResponseLikert7:
		return "Likert (7-point)"
	case ResponseSemDiff5:
		return "Semantic differential (5-point)"
	case ResponseSemDiff7:
		return "Semantic differential (7-point)"
	default:
		return string(f)
	}
}

// Scale is one psychometric dimension measured by a questionnaire
type Scale struct {
	Name           string   `yaml:"name" json:"name"`
	CronbachsAlpha *float64 `yaml:"cronbachsAlpha,omitempty" json:"cronbachsAlpha,omitempty"` // nil = not reported
}

// ParticipantDetails describes the validation sample of one language version
type ParticipantDetails struct {
	N     int      `yaml:"n" json:"n"`
	Types []string `yaml:"type" json:"type"`
}

// LocalizedData holds the scales of one administered language version
type LocalizedData struct {
	Language           string              `yaml:"language" json:"language"`
	Scales             []Scale             `yaml:"scales" json:"scales"`
	ParticipantDetails *ParticipantDetails `yaml:"participantDetails,omitempty" json:"participantDetails,omitempty"`
}

// Metadata holds the language-independent facts of a questionnaire
type Metadata struct {
	Time           []Time         `yaml:"time" json:"time"`
	Year           *int           `yaml:"year,omitempty" json:"year,omitempty"`
	Items          *int           `yaml:"items,omitempty" json:"items,omitempty"`
	Languages      []string       `yaml:"languages" json:"languages"`
	ResponseFormat ResponseFormat `yaml:"responseFormat,omitempty" json:"responseFormat,omitempty"`
}

// Link is an external reference such as a website or a DOI
type Link struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// Questionnaire is one catalog entry. Short is its identity.
type Questionnaire struct {
	Name     string            `yaml:"name" json:"name"`
	Short    string            `yaml:"short" json:"short"`
	Metadata Metadata          `yaml:"metadata" json:"metadata"`
	Data     []LocalizedData   `yaml:"data" json:"data"`
	Links    map[string][]Link `yaml:"links,omitempty" json:"links,omitempty"`
	Domain   []string          `yaml:"domain,omitempty" json:"domain,omitempty"`
	Notes    []string          `yaml:"notes,omitempty" json:"notes,omitempty"`
	License  string            `yaml:"license,omitempty" json:"license,omitempty"`
}

// ScaleCount is the number of scales summed over all language versions
func (q *Questionnaire) ScaleCount() int {
	n := 0
	for _, d := range q.Data {
		n += len(d.Scales)
	}
	return n
}

// ScaleNames returns every scale name across all language versions in order of appearance,
// duplicates included.
func (q *Questionnaire) ScaleNames() []string {
	var names []string
	for _, d := range q.Data {
		for _, s := range d.Scales {
			names = append(names, s.Name)
		}
	}
	return names
}

// ScalePreview returns the first n scale names and the number left out
func (q *Questionnaire) ScalePreview(n int) ([]string, int) {
	return preview(q.ScaleNames(), n)
}

// LanguagePreview returns the first n metadata languages and the number left out
func (q *Questionnaire) LanguagePreview(n int) ([]string, int) {
	return preview(q.Metadata.Languages, n)
}

// LinkCategories returns the link categories sorted ascending
func (q *Questionnaire) LinkCategories() []string {
	cats := make([]string, 0, len(q.Links))
	for c := range q.Links {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	return cats
}

// HasTime reports whether the questionnaire is administered at t
func (q *Questionnaire) HasTime(t Time) bool {
	return slices.Contains(q.Metadata.Time, t)
}

// HasLanguage reports whether code is listed in the questionnaire's metadata
func (q *Questionnaire) HasLanguage(code string) bool {
	return slices.Contains(q.Metadata.Languages, code)
}

// TimeLabels returns the readable timings joined with ", "
func (q *Questionnaire) TimeLabels() string {
	labels := make([]string, len(q.Metadata.Time))
	for i, t := range q.Metadata.Time {
		labels[i] = t.Label()
	}
	return strings.Join(labels, ", ")
}

func preview(values []string, n int) ([]string, int) {
	if n < 0 || len(values) <= n {
		return values, 0
	}
	return values[:n], len(values) - n
}

// CapitalizeCategory turns a link category like "website" into "Website"
func CapitalizeCategory(category string) string {
	if category == "" {
		return ""
	}
	r := []rune(category)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
