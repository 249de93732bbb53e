package sqlite

import (
	"context"
	"fmt"
	"strings"

	"hmiq/internal/domain"
)

// Query returns the abbreviations matching c in catalog order.
// Criteria combine with AND; selected scales combine with OR.
func (idx *Index) Query(ctx context.Context, c domain.Criteria) ([]string, error) {
	var (
		where []string
		args  []any
	)

	if c.Search != "" {
		where = append(where, `instr(q.name_folded, ?) > 0`)
		args = append(args, foldName(c.Search))
	}
	if len(c.Scales) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(c.Scales)), ",")
		where = append(where, `EXISTS (SELECT 1 FROM scale_entries s WHERE s.short = q.short AND s.scale IN (`+placeholders+`))`)
		for _, s := range c.Scales {
			args = append(args, s)
		}
	}
	if c.Time != domain.TimeAny {
		where = append(where, `EXISTS (SELECT 1 FROM times t WHERE t.short = q.short AND t.time = ?)`)
		args = append(args, string(c.Time))
	}
	if c.Language != "" {
		where = append(where, `EXISTS (SELECT 1 FROM languages l WHERE l.short = q.short AND l.code = ?)`)
		args = append(args, c.Language)
	}

	query := `SELECT q.short FROM questionnaires q`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY q.position`

	rows, err := idx.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer rows.Close()

	shorts := []string{}
	for rows.Next() {
		var short string
		if err := rows.Scan(&short); err != nil {
			return nil, err
		}
		shorts = append(shorts, short)
	}
	return shorts, rows.Err()
}

// ScaleUsage counts, per scale name, how many questionnaires measure it in any language
func (idx *Index) ScaleUsage(ctx context.Context) (map[string]int, error) {
	rows, err := idx.db.QueryContext(ctx, `
		SELECT scale, COUNT(DISTINCT short) FROM scale_entries GROUP BY scale
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scale usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]int)
	for rows.Next() {
		var (
			scale string
			n     int
		)
		if err := rows.Scan(&scale, &n); err != nil {
			return nil, err
		}
		usage[scale] = n
	}
	return usage, rows.Err()
}
