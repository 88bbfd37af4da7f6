package fitbod

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertSets writes sets in one batch. Existing rows with the same identity
// are overwritten.
func (r *Repo) UpsertSets(ctx context.Context, sets []Set) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbod.upsertsets")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	batch := &pgx.Batch{}
	for _, s := range sets {
		batch.Queue(`
			INSERT INTO fitbod_set (athlete_id, performed_at, exercise, set_number, reps, weight_kg, duration_s)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (athlete_id, performed_at, exercise, set_number)
			DO UPDATE SET reps = EXCLUDED.reps, weight_kg = EXCLUDED.weight_kg, duration_s = EXCLUDED.duration_s
		`, s.AthleteID, s.PerformedAt, s.Exercise, s.SetNumber, s.Reps, s.WeightKg, s.DurationS)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	var written int64
	for i := range sets {
		tag, err := results.Exec()
		if err != nil {
			return written, fmt.Errorf("set %d (%s): %w", i, sets[i].Exercise, err)
		}
		written += tag.RowsAffected()
	}
	return written, nil
}

// ListSets returns sets with from <= performed_at < to, oldest first.
func (r *Repo) ListSets(ctx context.Context, athleteID int, from, to time.Time) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbod.listsets")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT athlete_id, performed_at, exercise, set_number, reps, weight_kg, duration_s
		FROM fitbod_set
		WHERE athlete_id = $1 AND performed_at >= $2 AND performed_at < $3
		ORDER BY performed_at, exercise, set_number
	`, athleteID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []Set
	for rows.Next() {
		var s Set
		if err := rows.Scan(&s.AthleteID, &s.PerformedAt, &s.Exercise, &s.SetNumber, &s.Reps, &s.WeightKg, &s.DurationS); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *Repo) SaveScore(ctx context.Context, athleteID int, date time.Time, wss float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbod.savescore")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO strength_score (athlete_id, date, wss)
		VALUES ($1, $2, $3)
		ON CONFLICT (athlete_id, date) DO UPDATE SET wss = EXCLUDED.wss
	`, athleteID, pkg.CalendarDate(date), wss)
	return err
}
