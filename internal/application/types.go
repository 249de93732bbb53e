package application

import "hmiq/internal/domain"

// Re-export domain types for use by adapters
type (
	Questionnaire    = domain.Questionnaire
	Criteria         = domain.Criteria
	Detail           = domain.Detail
	LanguageOption   = domain.LanguageOption
	ScaleReliability = domain.ScaleReliability
	Time             = domain.Time
)

// LanguageName resolves a language code to its display name
func LanguageName(code string) string {
	return domain.LanguageName(code)
}
