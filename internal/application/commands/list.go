package commands

import (
	"context"

	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

// ListCommand returns the questionnaires matching a set of criteria
type ListCommand struct {
	repo     ports.CatalogRepository
	Criteria domain.Criteria
}

// NewListCommand creates a new ListCommand
func NewListCommand(repo ports.CatalogRepository, criteria domain.Criteria) *ListCommand {
	return &ListCommand{
		repo:     repo,
		Criteria: criteria,
	}
}

// Execute runs the filter over the full catalog
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Questionnaire, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.Filter(c.repo.All(), c.Criteria), nil
}
