package ports

import (
	"context"

	"hmiq/internal/domain"
)

// CatalogIndex is an on-disk inverted index over the catalog:
// scale name, language and administration time each map to questionnaires.
type CatalogIndex interface {
	// Lifecycle
	Open(path string) error
	Close() error

	// NeedsRebuild reports whether the stored fingerprint differs from the catalog's
	NeedsRebuild(ctx context.Context, catalog []domain.Questionnaire) (bool, error)
	Rebuild(ctx context.Context, catalog []domain.Questionnaire) (*domain.IndexStats, error)

	// Query returns matching abbreviations in catalog order
	Query(ctx context.Context, c domain.Criteria) ([]string, error)
}
