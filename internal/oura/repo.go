package oura

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListSleep returns every summary of the athlete ordered by report date.
func (r *Repo) ListSleep(ctx context.Context, athleteID int) (_ []SleepSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.oura.listsleep")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("athlete", athleteID))

	rows, err := r.db.Query(ctx, `
		SELECT athlete_id, report_date, rmssd, hr_average, hr_lowest
		FROM oura_sleep_summary
		WHERE athlete_id = $1
		ORDER BY report_date
	`, athleteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []SleepSummary
	for rows.Next() {
		var s SleepSummary
		if err := rows.Scan(&s.AthleteID, &s.ReportDate, &s.RMSSD, &s.HRAverage, &s.HRLowest); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(summaries)))
	return summaries, nil
}

// Add upserts the summary for its report date.
func (r *Repo) Add(ctx context.Context, s SleepSummary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.oura.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO oura_sleep_summary (athlete_id, report_date, rmssd, hr_average, hr_lowest)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (athlete_id, report_date) DO UPDATE
		SET rmssd = EXCLUDED.rmssd,
		    hr_average = EXCLUDED.hr_average,
		    hr_lowest = EXCLUDED.hr_lowest
	`, s.AthleteID, pkg.CalendarDate(s.ReportDate), s.RMSSD, s.HRAverage, s.HRLowest)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrUnknownAthlete
		}
		return fmt.Errorf("upsert sleep summary: %w", err)
	}
	return nil
}

// Version fingerprints the athlete's sleep rows. It changes on every insert,
// update or delete, whichever process made it.
func (r *Repo) Version(ctx context.Context, athleteID int) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.oura.version")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var (
		count     int64
		updatedAt time.Time
	)
	err = r.db.QueryRow(ctx, `
		SELECT count(*), COALESCE(max(updated_at), 'epoch'::timestamptz)
		FROM oura_sleep_summary
		WHERE athlete_id = $1
	`, athleteID).Scan(&count, &updatedAt)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d", count, updatedAt.UnixMicro()), nil
}

// LatestLowestHR returns the most recent nightly lowest heart rate reported
// on or before the given date.
func (r *Repo) LatestLowestHR(ctx context.Context, athleteID int, onOrBefore time.Time) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.oura.latestlowesthr")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var hr float64
	err = r.db.QueryRow(ctx, `
		SELECT hr_lowest
		FROM oura_sleep_summary
		WHERE athlete_id = $1 AND report_date <= $2 AND hr_lowest IS NOT NULL
		ORDER BY report_date DESC
		LIMIT 1
	`, athleteID, pkg.CalendarDate(onOrBefore)).Scan(&hr)
	if err != nil {
		if pkg.IsNotFoundError(err) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return hr, nil
}
