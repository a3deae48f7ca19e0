// Package round implements the round and hole-entry repository using
// PostgreSQL. A round and its hole entries are written as a unit: the service
// layer wraps InsertRound + InsertHoleEntries in a TxManager transaction, and
// every method here resolves its Querier from the context so it participates
// in that transaction automatically.
package round

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/fairwaylabs/golftrack-backend/internal/adapter/postgres"
	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

// Repo provides round persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new round repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// Raw SQL for aggregate read queries
// ---------------------------------------------------------------------------

const listSummariesSQL = `
SELECT
    r.id, r.course, r.played_at,
    SUM(h.strokes)::int  AS strokes,
    SUM(h.fir::int)::int AS fir,
    SUM(h.gir::int)::int AS gir,
    SUM(h.putts)::int    AS putts
FROM rounds r
JOIN hole_entries h ON h.round_id = r.id
GROUP BY r.id, r.course, r.played_at
ORDER BY r.played_at DESC, r.id DESC`

const getSummarySQL = `
SELECT
    r.id, r.course, r.played_at,
    SUM(h.strokes)::int  AS strokes,
    SUM(h.fir::int)::int AS fir,
    SUM(h.gir::int)::int AS gir,
    SUM(h.putts)::int    AS putts
FROM rounds r
JOIN hole_entries h ON h.round_id = r.id
WHERE r.id = $1
GROUP BY r.id, r.course, r.played_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertRound inserts one round row and returns its generated ID.
// A zero playedAt defers to the column default (now()).
func (r *Repo) InsertRound(ctx context.Context, course string, playedAt time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := builder.Insert("rounds").Columns("course").Values(course)
	if !playedAt.IsZero() {
		insert = builder.Insert("rounds").
			Columns("course", "played_at").
			Values(course, playedAt)
	}

	sql, args, err := insert.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert round: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "round", 0)
	}

	return id, nil
}

// InsertHoleEntries inserts one row per hole entry, all linked to roundID.
// Callers are expected to run this inside a transaction together with
// InsertRound so a failed entry leaves no partial round behind.
func (r *Repo) InsertHoleEntries(ctx context.Context, roundID int64, holes []domain.HoleEntry) error {
	if len(holes) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := builder.Insert("hole_entries").
		Columns("round_id", "hole", "strokes", "fir", "gir", "putts", "weather")
	for _, h := range holes {
		insert = insert.Values(roundID, h.Hole, h.Strokes, h.FIR, h.GIR, h.Putts, h.Weather.String())
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert hole entries: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "hole_entry", roundID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListSummaries returns per-round totals for every round that has hole
// entries, most recent first. Rounds without entries are excluded by the
// inner join.
func (r *Repo) ListSummaries(ctx context.Context) ([]domain.RoundSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSummariesSQL)
	if err != nil {
		return nil, fmt.Errorf("list round summaries: %w", err)
	}
	defer rows.Close()

	summaries := []domain.RoundSummary{}
	for rows.Next() {
		var s domain.RoundSummary
		if err := rows.Scan(&s.RoundID, &s.Course, &s.PlayedAt, &s.Strokes, &s.FIR, &s.GIR, &s.Putts); err != nil {
			return nil, fmt.Errorf("scan round summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list round summaries: %w", err)
	}

	return summaries, nil
}

// GetSummary returns the totals for a single round.
// Returns domain.ErrNotFound if the round does not exist or has no entries.
func (r *Repo) GetSummary(ctx context.Context, roundID int64) (*domain.RoundSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.RoundSummary
	err := q.QueryRow(ctx, getSummarySQL, roundID).
		Scan(&s.RoundID, &s.Course, &s.PlayedAt, &s.Strokes, &s.FIR, &s.GIR, &s.Putts)
	if err != nil {
		return nil, postgres.MapError(err, "round", roundID)
	}

	return &s, nil
}

// ListHoleEntriesByRound returns one round's hole entries in course order.
// An empty result means the round does not exist or has no entries; callers
// decide which of those is an error.
func (r *Repo) ListHoleEntriesByRound(ctx context.Context, roundID int64) ([]domain.HoleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select("id", "round_id", "hole", "strokes", "fir", "gir", "putts", "weather").
		From("hole_entries").
		Where(squirrel.Eq{"round_id": roundID}).
		OrderBy("hole ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list hole entries by round: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list hole entries for round %d: %w", roundID, err)
	}
	defer rows.Close()

	return scanHoleEntries(rows)
}

// ListHoleEntries returns every stored hole entry across all rounds.
// No ordering is guaranteed; consumers must not assume one.
func (r *Repo) ListHoleEntries(ctx context.Context) ([]domain.HoleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select("id", "round_id", "hole", "strokes", "fir", "gir", "putts", "weather").
		From("hole_entries")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list hole entries: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list hole entries: %w", err)
	}
	defer rows.Close()

	return scanHoleEntries(rows)
}

func scanHoleEntries(rows pgx.Rows) ([]domain.HoleEntry, error) {
	entries := []domain.HoleEntry{}
	for rows.Next() {
		var e domain.HoleEntry
		var weather string
		if err := rows.Scan(&e.ID, &e.RoundID, &e.Hole, &e.Strokes, &e.FIR, &e.GIR, &e.Putts, &weather); err != nil {
			return nil, fmt.Errorf("scan hole entry: %w", err)
		}
		e.Weather = domain.Weather(weather)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan hole entries: %w", err)
	}

	return entries, nil
}
