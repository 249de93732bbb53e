package commands

import (
	"context"
	"fmt"
	"strings"

	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

// ShowResult is a questionnaire together with its resolved quality detail
type ShowResult struct {
	Questionnaire *domain.Questionnaire
	Detail        domain.Detail
}

// ShowCommand resolves one questionnaire's detail for a language
type ShowCommand struct {
	repo     ports.CatalogRepository
	Short    string
	Language string // empty selects the first available language
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(repo ports.CatalogRepository, short, language string) *ShowCommand {
	return &ShowCommand{
		repo:     repo,
		Short:    short,
		Language: language,
	}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := c.repo.Get(c.Short)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", c.Short, err)
	}

	return &ShowResult{
		Questionnaire: q,
		Detail:        domain.ResolveDetail(q, strings.ToUpper(strings.TrimSpace(c.Language))),
	}, nil
}
