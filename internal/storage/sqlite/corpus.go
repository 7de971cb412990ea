package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/pkg/log"
)

const (
	defaultSearchLimit = 25
	defaultSampleLimit = 30
	defaultFilterLimit = 20
)

type CorpusRepo struct {
	db *sql.DB
}

func NewCorpusRepo(db *sql.DB) *CorpusRepo {
	return &CorpusRepo{db: db}
}

const recordColumns = `id, title, excerpt, publication, published_at, relevance, narrative_strength, potential, story_types`

// Search implements the corpus search contract. An empty keyword set returns
// a diverse high-confidence sample instead of matching everything.
func (r *CorpusRepo) Search(ctx context.Context, q core.CorpusQuery) ([]core.CorpusRecord, error) {
	if len(q.Keywords) == 0 {
		return r.diverseSample(ctx, q.Limit)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	// Any-keyword OR match across title, excerpt, story types and the
	// analyst's notes, case-insensitive.
	var conds []string
	var args []any
	for _, kw := range q.Keywords {
		pattern := "%" + strings.ToLower(kw) + "%"
		conds = append(conds,
			`(lower(title) LIKE ? OR lower(excerpt) LIKE ? OR lower(story_types) LIKE ? OR lower(analysis) LIKE ?)`)
		args = append(args, pattern, pattern, pattern, pattern)
	}
	args = append(args, limit)

	query := fmt.Sprintf(
		`SELECT %s FROM corpus_records WHERE %s ORDER BY relevance DESC LIMIT ?`,
		recordColumns, strings.Join(conds, " OR "),
	)

	records, err := r.queryRecords(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}

	log.FromCtx(ctx).Debug().
		Int("keywords", len(q.Keywords)).
		Int("records", len(records)).
		Msg("corpus search")
	return records, nil
}

// diverseSample selects interesting records with documentary potential,
// strongest first, as the fallback when no keywords narrowed the request.
func (r *CorpusRepo) diverseSample(ctx context.Context, limit int) ([]core.CorpusRecord, error) {
	if limit <= 0 {
		limit = defaultSampleLimit
	}

	query := fmt.Sprintf(
		`SELECT %s FROM corpus_records
		 WHERE interesting = 1 AND potential IN (?, ?)
		 ORDER BY relevance DESC, narrative_strength DESC
		 LIMIT ?`, recordColumns)

	records, err := r.queryRecords(ctx, query, string(core.PotentialYes), string(core.PotentialMaybe), limit)
	if err != nil {
		return nil, fmt.Errorf("diverse sample: %w", err)
	}
	return records, nil
}

// Filtered serves the tool surface: free-text query narrowed by potential
// and a relevance floor.
func (r *CorpusRepo) Filtered(ctx context.Context, f core.CorpusFilter) ([]core.CorpusRecord, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultFilterLimit
	}

	conds := []string{"1=1"}
	var args []any

	if f.Query != "" {
		pattern := "%" + strings.ToLower(f.Query) + "%"
		conds = append(conds, `(lower(title) LIKE ? OR lower(excerpt) LIKE ?)`)
		args = append(args, pattern, pattern)
	}
	if f.Potential != "" {
		conds = append(conds, `potential = ?`)
		args = append(args, string(f.Potential))
	}
	if f.MinRelevance > 0 {
		conds = append(conds, `relevance >= ?`)
		args = append(args, f.MinRelevance)
	}
	args = append(args, limit)

	query := fmt.Sprintf(
		`SELECT %s FROM corpus_records WHERE %s ORDER BY relevance DESC LIMIT ?`,
		recordColumns, strings.Join(conds, " AND "),
	)

	return r.queryRecords(ctx, query, args...)
}

func (r *CorpusRepo) Stats(ctx context.Context) (core.CorpusStats, error) {
	stats := core.CorpusStats{ByPotential: make(map[core.DocumentaryPotential]int)}

	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(interesting), 0) FROM corpus_records`)
	if err := row.Scan(&stats.TotalRecords, &stats.Interesting); err != nil {
		return core.CorpusStats{}, fmt.Errorf("corpus counts: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT potential, COUNT(*) FROM corpus_records GROUP BY potential`)
	if err != nil {
		return core.CorpusStats{}, fmt.Errorf("potential distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var potential string
		var count int
		if err := rows.Scan(&potential, &count); err != nil {
			return core.CorpusStats{}, fmt.Errorf("scan distribution: %w", err)
		}
		stats.ByPotential[core.DocumentaryPotential(potential)] = count
	}
	return stats, rows.Err()
}

// Insert loads one record, used by the seed command and tests.
func (r *CorpusRepo) Insert(ctx context.Context, rec core.CorpusRecord, interesting bool, analysis string) error {
	var published any
	if rec.PublishedAt != nil {
		published = rec.PublishedAt.Format(time.DateOnly)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO corpus_records
		 (title, excerpt, publication, published_at, relevance, narrative_strength, potential, story_types, analysis, interesting)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Title, rec.Excerpt, rec.Publication, published,
		rec.Relevance, rec.NarrativeStrength, string(rec.Potential), rec.StoryTypes,
		analysis, boolToInt(interesting),
	)
	if err != nil {
		return fmt.Errorf("insert corpus record: %w", err)
	}
	return nil
}

func (r *CorpusRepo) queryRecords(ctx context.Context, query string, args ...any) ([]core.CorpusRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []core.CorpusRecord
	for rows.Next() {
		var rec core.CorpusRecord
		var publication, potential, storyTypes sql.NullString
		var published sql.NullTime

		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Excerpt, &publication, &published,
			&rec.Relevance, &rec.NarrativeStrength, &potential, &storyTypes,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		rec.Publication = publication.String
		rec.Potential = core.DocumentaryPotential(potential.String)
		rec.StoryTypes = storyTypes.String
		if published.Valid {
			ts := published.Time
			rec.PublishedAt = &ts
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
