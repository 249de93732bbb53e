package ports

import "hmiq/internal/domain"

// CatalogRepository gives read access to the loaded questionnaire catalog.
// The catalog never changes after it is loaded.
type CatalogRepository interface {
	// All returns every questionnaire in catalog order
	All() []domain.Questionnaire

	// Get returns the questionnaire with the given abbreviation (case-insensitive)
	Get(short string) (*domain.Questionnaire, error)

	// Source describes where the catalog was loaded from
	Source() string
}
