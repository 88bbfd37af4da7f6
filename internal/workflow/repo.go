package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound   = errors.New("step log entry not found")
	ErrPlanExists = errors.New("plan for date already exists")
)

const stepColumns = `id, athlete_id, date, workout_step, description, completed, rationale`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Latest(ctx context.Context, athleteID int) (_ *StepLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.latest")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+stepColumns+` FROM workout_step_log
		WHERE athlete_id = $1
		ORDER BY date DESC
		LIMIT 1
	`, athleteID)
	return scanEntry(row)
}

func (r *Repo) GetByDate(ctx context.Context, athleteID int, date time.Time) (_ *StepLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.getbydate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+stepColumns+` FROM workout_step_log
		WHERE athlete_id = $1 AND date = $2
	`, athleteID, pkg.CalendarDate(date))
	return scanEntry(row)
}

// Between returns entries with from <= date <= to, oldest first.
func (r *Repo) Between(ctx context.Context, athleteID int, from, to time.Time) (_ []StepLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.between")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+stepColumns+` FROM workout_step_log
		WHERE athlete_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`, athleteID, pkg.CalendarDate(from), pkg.CalendarDate(to))
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (r *Repo) ListPage(ctx context.Context, athleteID, page, size int) (_ []StepLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.listpage")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	limit := size
	offset := (page - 1) * size
	rows, err := r.db.Query(ctx, `
		SELECT `+stepColumns+` FROM workout_step_log
		WHERE athlete_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`, athleteID, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (r *Repo) Count(ctx context.Context, athleteID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.count")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_step_log WHERE athlete_id = $1`, athleteID,
	).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) Insert(ctx context.Context, e *StepLogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_step_log (athlete_id, date, workout_step, description, completed, rationale)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, e.AthleteID, pkg.CalendarDate(e.Date), int(e.Step), e.Description, e.Completed, e.Rationale).Scan(&e.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrPlanExists
		}
		return err
	}
	return nil
}

func (r *Repo) SetCompleted(ctx context.Context, athleteID int, date time.Time, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.setcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_step_log SET completed = $3
		WHERE athlete_id = $1 AND date = $2
	`, athleteID, pkg.CalendarDate(date), completed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteAll(ctx context.Context, athleteID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.deleteall")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_step_log WHERE athlete_id = $1`, athleteID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanEntry(row pgx.Row) (*StepLogEntry, error) {
	var (
		e    StepLogEntry
		step int
	)
	if err := row.Scan(&e.ID, &e.AthleteID, &e.Date, &step, &e.Description, &e.Completed, &e.Rationale); err != nil {
		if pkg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan step: %w", err)
	}
	e.Step = Step(step)
	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]StepLogEntry, error) {
	defer rows.Close()

	var entries []StepLogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
