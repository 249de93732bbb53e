package domain

import (
	"slices"
	"strings"
)

// CanonicalLanguage is the language whose scale names make up the scale facet
const CanonicalLanguage = "EN"

// ScaleFacet returns the distinct scale names of the canonical-language data entries,
// sorted case-insensitively. It always looks at the full catalog.
func ScaleFacet(catalog []Questionnaire) []string {
	seen := make(map[string]struct{})
	var names []string
	for i := range catalog {
		for _, d := range catalog[i].Data {
			if !strings.EqualFold(d.Language, CanonicalLanguage) {
				continue
			}
			for _, s := range d.Scales {
				if _, ok := seen[s.Name]; ok {
					continue
				}
				seen[s.Name] = struct{}{}
				names = append(names, s.Name)
			}
		}
	}
	slices.SortFunc(names, compareFold)
	return names
}

// NarrowScales keeps the scale names containing text, case-insensitively
func NarrowScales(scales []string, text string) []string {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return scales
	}
	var out []string
	for _, s := range scales {
		if strings.Contains(strings.ToLower(s), needle) {
			out = append(out, s)
		}
	}
	return out
}

// LanguageFacet returns the distinct metadata language codes in order of first appearance
func LanguageFacet(catalog []Questionnaire) []string {
	seen := make(map[string]struct{})
	var codes []string
	for i := range catalog {
		for _, code := range catalog[i].Metadata.Languages {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	return codes
}

// LanguageOptions resolves codes to display names and keeps those whose
// display name contains text, case-insensitively. The raw code is not searched.
func LanguageOptions(codes []string, text string) []LanguageOption {
	needle := strings.ToLower(strings.TrimSpace(text))
	opts := make([]LanguageOption, 0, len(codes))
	for _, code := range codes {
		name := LanguageName(code)
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		opts = append(opts, LanguageOption{Code: code, Name: name})
	}
	return opts
}

func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
