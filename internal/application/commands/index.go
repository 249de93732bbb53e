package commands

import (
	"context"
	"fmt"

	"hmiq/internal/domain"
	"hmiq/internal/ports"
)

// BuildIndexCommand rebuilds the inverted index when the catalog changed
type BuildIndexCommand struct {
	repo  ports.CatalogRepository
	index ports.CatalogIndex
	Force bool
}

// NewBuildIndexCommand creates a new BuildIndexCommand
func NewBuildIndexCommand(repo ports.CatalogRepository, index ports.CatalogIndex, force bool) *BuildIndexCommand {
	return &BuildIndexCommand{repo: repo, index: index, Force: force}
}

// Execute rebuilds the index. It returns nil stats when the index was already current.
func (c *BuildIndexCommand) Execute(ctx context.Context) (*domain.IndexStats, error) {
	catalog := c.repo.All()

	if !c.Force {
		stale, err := c.index.NeedsRebuild(ctx, catalog)
		if err != nil {
			return nil, fmt.Errorf("check index: %w", err)
		}
		if !stale {
			return nil, nil
		}
	}

	stats, err := c.index.Rebuild(ctx, catalog)
	if err != nil {
		return nil, fmt.Errorf("rebuild index: %w", err)
	}
	return stats, nil
}

// QueryIndexCommand answers a filter from the inverted index instead of scanning the catalog
type QueryIndexCommand struct {
	repo     ports.CatalogRepository
	index    ports.CatalogIndex
	Criteria domain.Criteria
}

// NewQueryIndexCommand creates a new QueryIndexCommand
func NewQueryIndexCommand(repo ports.CatalogRepository, index ports.CatalogIndex, criteria domain.Criteria) *QueryIndexCommand {
	return &QueryIndexCommand{repo: repo, index: index, Criteria: criteria}
}

// Execute runs the query and maps the abbreviations back to catalog records
func (c *QueryIndexCommand) Execute(ctx context.Context) ([]domain.Questionnaire, error) {
	shorts, err := c.index.Query(ctx, c.Criteria)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	out := make([]domain.Questionnaire, 0, len(shorts))
	for _, s := range shorts {
		q, err := c.repo.Get(s)
		if err != nil {
			return nil, fmt.Errorf("index references %s: %w", s, err)
		}
		out = append(out, *q)
	}
	return out, nil
}
