package catalogfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hmiq/internal/application"
	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

//go:embed questionnaires.yaml
var defaultCatalog []byte

// DefaultSource names the catalog bundled with the binary
const DefaultSource = "embedded:questionnaires.yaml"

// Repository implements ports.CatalogRepository over a YAML catalog held in memory
type Repository struct {
	source         string
	questionnaires []domain.Questionnaire
	byShort        map[string]int // lower-cased short -> index
}

var _ ports.CatalogRepository = (*Repository)(nil)

type document struct {
	Questionnaires []domain.Questionnaire `yaml:"questionnaires"`
}

// LoadDefault loads the bundled catalog
func LoadDefault(logger *slog.Logger) (*Repository, error) {
	return decode(DefaultSource, bytes.NewReader(defaultCatalog), logger)
}

// Load reads and validates a catalog file. An empty path loads the bundled catalog.
func Load(path string, logger *slog.Logger) (*Repository, error) {
	if path == "" {
		return LoadDefault(logger)
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return decode(path, f, logger)
}

func decode(source string, r io.Reader, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}

	if err := application.ValidateCatalog(doc.Questionnaires); err != nil {
		logger.Error("catalog rejected", "source", source, "error", err)
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}

	repo := &Repository{
		source:         source,
		questionnaires: doc.Questionnaires,
		byShort:        make(map[string]int, len(doc.Questionnaires)),
	}
	for i, q := range doc.Questionnaires {
		key := strings.ToLower(q.Short)
		if _, ok := repo.byShort[key]; !ok {
			repo.byShort[key] = i
		}
	}

	logger.Debug("catalog loaded",
		"source", source,
		"questionnaires", len(repo.questionnaires),
		"scales", len(domain.ScaleFacet(repo.questionnaires)),
		"languages", len(domain.LanguageFacet(repo.questionnaires)),
	)
	return repo, nil
}

// All returns the questionnaires in catalog order.
// The slice is a fresh copy; the records themselves must be treated as read-only.
func (r *Repository) All() []domain.Questionnaire {
	out := make([]domain.Questionnaire, len(r.questionnaires))
	copy(out, r.questionnaires)
	return out
}

// Get returns the questionnaire whose abbreviation matches short, ignoring case.
// A miss yields an application.NotFoundError with close matches as suggestions.
func (r *Repository) Get(short string) (*domain.Questionnaire, error) {
	if i, ok := r.byShort[strings.ToLower(strings.TrimSpace(short))]; ok {
		q := r.questionnaires[i]
		return &q, nil
	}
	return nil, &application.NotFoundError{
		Short:       short,
		Suggestions: domain.Suggest(r.questionnaires, short, 3),
	}
}

// Source describes where the catalog came from
func (r *Repository) Source() string {
	return r.source
}
