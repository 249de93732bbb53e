package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hmiq/internal/adapters/catalogfile"
	"hmiq/internal/domain"
)

func testRepo(t *testing.T) *catalogfile.Repository {
	t.Helper()
	repo, err := catalogfile.LoadDefault(nil)
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	return repo
}

func press(m tea.Model, keys ...tea.KeyType) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(tea.KeyMsg{Type: k})
	}
	return cmd
}

func typeText(m tea.Model, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

func shortsOf(qs []domain.Questionnaire) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Short
	}
	return out
}
