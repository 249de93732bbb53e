package commands

import (
	"context"

	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

// SearchCommand ranks questionnaires by fuzzy similarity of abbreviation and name
type SearchCommand struct {
	repo  ports.CatalogRepository
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.CatalogRepository, query string) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len([]rune(c.Query)) < 2 {
		return nil, nil
	}
	return domain.Rank(c.repo.All(), c.Query), nil
}
