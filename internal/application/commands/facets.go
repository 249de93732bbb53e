package commands

import (
	"context"

	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

// ScaleFacetCommand lists the selectable scale names, optionally narrowed by text
type ScaleFacetCommand struct {
	repo ports.CatalogRepository
	Text string
}

// NewScaleFacetCommand creates a new ScaleFacetCommand
func NewScaleFacetCommand(repo ports.CatalogRepository, text string) *ScaleFacetCommand {
	return &ScaleFacetCommand{repo: repo, Text: text}
}

// Execute runs the scale facet command
func (c *ScaleFacetCommand) Execute(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.NarrowScales(domain.ScaleFacet(c.repo.All()), c.Text), nil
}

// LanguageFacetCommand lists the selectable languages, optionally narrowed by display name
type LanguageFacetCommand struct {
	repo ports.CatalogRepository
	Text string
}

// NewLanguageFacetCommand creates a new LanguageFacetCommand
func NewLanguageFacetCommand(repo ports.CatalogRepository, text string) *LanguageFacetCommand {
	return &LanguageFacetCommand{repo: repo, Text: text}
}

// Execute runs the language facet command
func (c *LanguageFacetCommand) Execute(ctx context.Context) ([]domain.LanguageOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.LanguageOptions(domain.LanguageFacet(c.repo.All()), c.Text), nil
}
