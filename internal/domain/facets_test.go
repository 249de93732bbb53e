package domain

import (
	"slices"
	"testing"
)

func TestScaleFacet(t *testing.T) {
	got := ScaleFacet(testCatalog())
	want := []string{"Familiarity", "Hedonic", "Pragmatic", "Reliability", "Social", "task", "Usability"}
	if !slices.Equal(got, want) {
		t.Errorf("ScaleFacet() = %v, want %v", got, want)
	}
}

func TestScaleFacetIgnoresNonCanonicalLanguages(t *testing.T) {
	got := ScaleFacet(testCatalog())
	for _, name := range []string{"Vertrautheit", "Hedonische Qualität"} {
		if slices.Contains(got, name) {
			t.Errorf("ScaleFacet() contains German-only scale %q", name)
		}
	}
}

func TestScaleFacetMatchesLanguageCaseInsensitively(t *testing.T) {
	catalog := []Questionnaire{{
		Short: "X",
		Data:  []LocalizedData{{Language: "en", Scales: scales("Trust", "Trust")}},
	}}
	got := ScaleFacet(catalog)
	if !slices.Equal(got, []string{"Trust"}) {
		t.Errorf("ScaleFacet() = %v, want [Trust]", got)
	}
}

func TestNarrowScales(t *testing.T) {
	facet := []string{"Hedonic", "Pragmatic", "Reliability"}
	tests := []struct {
		text string
		want []string
	}{
		{text: "", want: facet},
		{text: "PRAG", want: []string{"Pragmatic"}},
		{text: "ic", want: []string{"Hedonic", "Pragmatic"}},
		{text: "none", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := NarrowScales(facet, tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("NarrowScales(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLanguageFacet(t *testing.T) {
	got := LanguageFacet(testCatalog())
	want := []string{"EN", "DE", "FR"}
	if !slices.Equal(got, want) {
		t.Errorf("LanguageFacet() = %v, want %v", got, want)
	}
}

func TestFacetsDoNotDependOnFilter(t *testing.T) {
	catalog := testCatalog()
	before := ScaleFacet(catalog)
	_ = Filter(catalog, Criteria{Language: "FR"})
	if after := ScaleFacet(catalog); !slices.Equal(before, after) {
		t.Errorf("facet changed after filtering: %v vs %v", before, after)
	}
}

func TestLanguageOptions(t *testing.T) {
	codes := []string{"EN", "DE", "FR"}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "no text keeps all", text: "", want: []string{"EN", "DE", "FR"}},
		{name: "matches display name", text: "germ", want: []string{"DE"}},
		{name: "matches case-insensitively", text: "ENGLISH", want: []string{"EN"}},
		{name: "raw code is not searched", text: "de", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := LanguageOptions(codes, tt.text)
			got := make([]string, len(opts))
			for i, o := range opts {
				got[i] = o.Code
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("LanguageOptions(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
