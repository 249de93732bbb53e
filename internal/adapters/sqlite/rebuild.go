package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hmiq/internal/domain"
)

// Rebuild replaces the index contents with catalog in a single transaction
func (idx *Index) Rebuild(ctx context.Context, catalog []domain.Questionnaire) (*domain.IndexStats, error) {
	start := time.Now()
	stats := &domain.IndexStats{}

	fingerprint, err := domain.Fingerprint(catalog)
	if err != nil {
		return nil, err
	}

	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rt := &rebuildTx{tx: tx, stats: stats}
	if err := rt.clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear index: %w", err)
	}
	for i := range catalog {
		if err := rt.insertQuestionnaire(ctx, i, &catalog[i]); err != nil {
			return nil, fmt.Errorf("failed to index %s: %w", catalog[i].Short, err)
		}
	}
	if err := rt.writeMeta(ctx, fingerprint); err != nil {
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit index: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// foldName lower-cases in Go so matching agrees with the in-memory filter for non-ASCII names
func foldName(s string) string {
	return strings.ToLower(s)
}
