package sqlite

import (
	"context"
	"database/sql"

	"hmiq/internal/domain"
)

// rebuildTx writes catalog rows inside one transaction
type rebuildTx struct {
	tx    *sql.Tx
	stats *domain.IndexStats
}

func (t *rebuildTx) clear(ctx context.Context) error {
	_, err := t.tx.ExecContext(ctx, `
		DELETE FROM questionnaires;
		DELETE FROM scale_entries;
		DELETE FROM languages;
		DELETE FROM times;
	`)
	return err
}

// insertQuestionnaire adds q and all of its inverted-index rows
func (t *rebuildTx) insertQuestionnaire(ctx context.Context, position int, q *domain.Questionnaire) error {
	if _, err := t.tx.ExecContext(ctx, `
		INSERT INTO questionnaires (short, name, name_folded, position)
		VALUES (?, ?, ?, ?)
	`, q.Short, q.Name, foldName(q.Name), position); err != nil {
		return err
	}
	t.stats.Questionnaires++

	for _, d := range q.Data {
		for _, s := range d.Scales {
			if _, err := t.tx.ExecContext(ctx, `
				INSERT INTO scale_entries (short, language, scale, alpha)
				VALUES (?, ?, ?, ?)
			`, q.Short, d.Language, s.Name, nullFloat(s.CronbachsAlpha)); err != nil {
				return err
			}
			t.stats.ScaleEntries++
		}
	}

	for _, code := range q.Metadata.Languages {
		if _, err := t.tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO languages (short, code) VALUES (?, ?)
		`, q.Short, code); err != nil {
			return err
		}
		t.stats.LanguageRows++
	}

	for _, tm := range q.Metadata.Time {
		if _, err := t.tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO times (short, time) VALUES (?, ?)
		`, q.Short, string(tm)); err != nil {
			return err
		}
		t.stats.TimeRows++
	}
	return nil
}

func (t *rebuildTx) writeMeta(ctx context.Context, fingerprint string) error {
	for key, value := range map[string]string{
		"schema_version":      schemaVersion,
		"catalog_fingerprint": fingerprint,
	} {
		if _, err := t.tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return err
		}
	}
	return nil
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
