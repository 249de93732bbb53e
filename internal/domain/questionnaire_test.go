package domain

import (
	"slices"
	"testing"
)

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "EN", want: "English"},
		{code: "DE", want: "German"},
		{code: "ja", want: "Japanese"},
		{code: "CN", want: "Chinese"},
		{code: "EE", want: "Estonian"},
		{code: "SI", want: "Slovenian"},
		{code: "XQZ1", want: "XQZ1"},
		{code: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := LanguageName(tt.code); got != tt.want {
				t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLanguageNames(t *testing.T) {
	got := LanguageNames([]string{"DE", "EE", "XQZ1"})
	want := []string{"German", "Estonian", "XQZ1"}
	if !slices.Equal(got, want) {
		t.Errorf("LanguageNames() = %v, want %v", got, want)
	}
}

func TestLanguageOptionLabel(t *testing.T) {
	if got := (LanguageOption{Code: "DE", Name: "German"}).Label(); got != "German (DE)" {
		t.Errorf("Label() = %q", got)
	}
	if got := (LanguageOption{Code: "QQ", Name: "QQ"}).Label(); got != "QQ" {
		t.Errorf("Label() = %q", got)
	}
}

func TestQuestionnairePreviews(t *testing.T) {
	q := Questionnaire{
		Data: []LocalizedData{
			{Language: "EN", Scales: scales("A", "B", "C", "D")},
			{Language: "DE", Scales: scales("A")},
		},
		Metadata: Metadata{Languages: []string{"EN", "DE", "FR"}},
		Links: map[string][]Link{
			"website": {{Title: "Home", URL: "https://example.org"}},
			"doi":     {{Title: "Paper", URL: "https://doi.org/10.1/x"}},
		},
	}

	if got := q.ScaleCount(); got != 5 {
		t.Errorf("ScaleCount() = %d, want 5", got)
	}

	names, rest := q.ScalePreview(3)
	if !slices.Equal(names, []string{"A", "B", "C"}) || rest != 2 {
		t.Errorf("ScalePreview(3) = %v +%d", names, rest)
	}

	langs, rest := q.LanguagePreview(10)
	if len(langs) != 3 || rest != 0 {
		t.Errorf("LanguagePreview(10) = %v +%d", langs, rest)
	}

	if got := q.LinkCategories(); !slices.Equal(got, []string{"doi", "website"}) {
		t.Errorf("LinkCategories() = %v", got)
	}
}

func TestCapitalizeCategory(t *testing.T) {
	tests := map[string]string{"website": "Website", "doi": "Doi", "": "", "OSF": "OSF"}
	for in, want := range tests {
		if got := CapitalizeCategory(in); got != want {
			t.Errorf("CapitalizeCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTimeLabel(t *testing.T) {
	q := Questionnaire{Metadata: Metadata{Time: []Time{TimePreStudy, TimeStandalone}}}
	if got := q.TimeLabels(); got != "Pre-study, Standalone" {
		t.Errorf("TimeLabels() = %q", got)
	}
}
