package catalogfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmiq/internal/application"
	"hmiq/internal/domain"
)

func shorts(qs []domain.Questionnaire) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Short
	}
	return out
}

func loadDefault(t *testing.T) *Repository {
	t.Helper()
	repo, err := LoadDefault(nil)
	require.NoError(t, err)
	return repo
}

func TestLoadDefault(t *testing.T) {
	repo := loadDefault(t)

	assert.Equal(t, DefaultSource, repo.Source())
	assert.Equal(t, []string{
		"SUS", "UEQ", "UEQ-S", "Accept. Scale", "NARS", "ACIR-Q",
		"TiA", "UMUX", "ASQ", "NASA-TLX", "AttrakDiff", "PAAI",
	}, shorts(repo.All()))

	ueq, err := repo.Get("UEQ")
	require.NoError(t, err)
	assert.Len(t, ueq.Metadata.Languages, 37)
	assert.Equal(t, domain.ResponseSemDiff7, ueq.Metadata.ResponseFormat)
	require.NotNil(t, ueq.Metadata.Year)
	assert.Equal(t, 2005, *ueq.Metadata.Year)
}

func TestAllReturnsIndependentSlice(t *testing.T) {
	repo := loadDefault(t)

	all := repo.All()
	all[0] = domain.Questionnaire{Short: "CHANGED"}

	assert.Equal(t, "SUS", repo.All()[0].Short)
}

func TestGet(t *testing.T) {
	repo := loadDefault(t)

	q, err := repo.Get("nasa-tlx")
	require.NoError(t, err)
	assert.Equal(t, "NASA Task Load Index", q.Name)

	_, err = repo.Get("UEQ-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, application.ErrNotFound))

	var nf *application.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Contains(t, nf.Suggestions, "UEQ-S")
}

// Scenario: selecting "Usability" yields SUS only; its detail shows EN with the scale not reported.
func TestScaleSelectionScenario(t *testing.T) {
	catalog := loadDefault(t).All()

	got := domain.Filter(catalog, domain.Criteria{Scales: []string{"Usability"}})
	require.Equal(t, []string{"SUS"}, shorts(got))

	d := domain.ResolveDetail(&got[0], "")
	assert.Equal(t, []string{"EN"}, d.Languages)
	assert.Equal(t, "EN", d.Language)
	require.Len(t, d.Scales, 1)
	assert.Equal(t, domain.AlphaNotReported, d.Scales[0].State)
	assert.Nil(t, d.Participants)
}

// Scenario: post-study questionnaires available in German
func TestPostStudyGermanScenario(t *testing.T) {
	catalog := loadDefault(t).All()

	got := domain.Filter(catalog, domain.Criteria{Time: domain.TimePostStudy, Language: "DE"})
	assert.Equal(t, []string{
		"SUS", "UEQ", "UEQ-S", "Accept. Scale", "NARS", "TiA", "UMUX", "AttrakDiff",
	}, shorts(got))
}

// Scenario: TiA in German lists six scales, none with a reliability figure
func TestTrustInAutomationGermanScenario(t *testing.T) {
	q, err := loadDefault(t).Get("TiA")
	require.NoError(t, err)

	d := domain.ResolveDetail(q, "DE")
	require.Len(t, d.Scales, 6)
	for _, s := range d.Scales {
		assert.Equal(t, domain.AlphaNotReported, s.State, s.Name)
		assert.Equal(t, "—", s.Display())
	}
	assert.Nil(t, d.Participants)
}

// Scenario: name search is case-insensitive
func TestNameSearchScenario(t *testing.T) {
	catalog := loadDefault(t).All()

	got := domain.Filter(catalog, domain.Criteria{Search: "usability"})
	assert.Equal(t, []string{"SUS", "UMUX"}, shorts(got))

	got = domain.Filter(catalog, domain.Criteria{Search: "USABILITY"})
	assert.Equal(t, []string{"SUS", "UMUX"}, shorts(got))
}

func TestDefaultFacets(t *testing.T) {
	catalog := loadDefault(t).All()

	scales := domain.ScaleFacet(catalog)
	assert.Contains(t, scales, "Cognitive Load")
	assert.Equal(t, "Acceptance", scales[0])
	assert.Equal(t, "Usefulness", scales[len(scales)-1])

	langs := domain.LanguageFacet(catalog)
	assert.Equal(t, "EN", langs[0])
	assert.Contains(t, langs, "CN")
}

func TestUEQShortParticipants(t *testing.T) {
	q, err := loadDefault(t).Get("UEQ-S")
	require.NoError(t, err)

	d := domain.ResolveDetail(q, "EN")
	require.NotNil(t, d.Participants)
	assert.Equal(t, 31, d.Participants.N)
	assert.Equal(t, "Students", d.Participants.TypesLabel())
	assert.Equal(t, "0.81", d.Scales[0].Display())
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantLen int
	}{
		{
			name: "valid file",
			content: `questionnaires:
  - name: Example
    short: EX
    data:
      - language: EN
        scales: [{name: Trust, cronbachsAlpha: 0.9}]
    metadata: {time: [Standalone], languages: [EN]}
`,
			wantLen: 1,
		},
		{
			name: "missing time",
			content: `questionnaires:
  - name: Example
    short: EX
    data: []
    metadata: {languages: [EN]}
`,
			wantErr: application.ErrInvalidCatalog,
		},
		{
			name: "data language not listed",
			content: `questionnaires:
  - name: Example
    short: EX
    data:
      - language: FR
        scales: [{name: Trust}]
    metadata: {time: [PostStudy], languages: [EN]}
`,
			wantErr: application.ErrInvalidCatalog,
		},
		{
			name: "alpha not a number",
			content: `questionnaires:
  - name: Example
    short: EX
    data:
      - language: EN
        scales: [{name: Trust, cronbachsAlpha: .nan}]
    metadata: {time: [PostStudy], languages: [EN]}
`,
			wantErr: application.ErrInvalidCatalog,
		},
		{
			name: "abbreviations differing only in case",
			content: `questionnaires:
  - name: First
    short: SUS
    data: [{language: EN, scales: [{name: Usability}]}]
    metadata: {time: [PostStudy], languages: [EN]}
  - name: Second
    short: sus
    data: [{language: EN, scales: [{name: Usability}]}]
    metadata: {time: [PostStudy], languages: [EN]}
`,
			wantErr: application.ErrInvalidCatalog,
		},
		{
			name:    "empty file",
			content: "",
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			repo, err := Load(path, nil)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, repo.All(), tt.wantLen)
			assert.Equal(t, path, repo.Source())
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `questionnaires:
  - name: Example
    short: EX
    colour: blue
    metadata: {time: [PostStudy], languages: [EN]}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
