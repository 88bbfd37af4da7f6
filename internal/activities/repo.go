package activities

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const activityColumns = `
	id, athlete_id, name, type, start_date, elapsed_time, moving_time,
	average_watts, average_heartrate, ftp, weight_kg,
	tss, hrss, trimp, intensity, variability_index, efficiency_factor, watts_per_kg, scored_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int64("activity", id))

	a, err := scanActivity(r.db.QueryRow(ctx, `SELECT `+activityColumns+` FROM strava_activity WHERE id = $1`, id))
	if err != nil {
		if pkg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *Repo) ListUnscored(ctx context.Context, athleteID int) (_ []*Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.listunscored")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+activityColumns+`
		FROM strava_activity
		WHERE athlete_id = $1 AND scored_at IS NULL
		ORDER BY start_date
	`, athleteID)
	if err != nil {
		return nil, err
	}
	return collectActivities(rows)
}

// ListOnDate returns activities started within the calendar day of dayStart,
// interpreted in dayStart's location.
func (r *Repo) ListOnDate(ctx context.Context, athleteID int, dayStart time.Time) (_ []*Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.listondate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	from := pkg.Day(dayStart)
	rows, err := r.db.Query(ctx, `
		SELECT `+activityColumns+`
		FROM strava_activity
		WHERE athlete_id = $1 AND start_date >= $2 AND start_date < $3
		ORDER BY start_date
	`, athleteID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return collectActivities(rows)
}

// HasQualifyingActivity reports whether a non-"Workout" activity lasting at
// least minSeconds was started on dayStart's calendar day.
func (r *Repo) HasQualifyingActivity(ctx context.Context, athleteID int, dayStart time.Time, minSeconds int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.hasqualifying")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	from := pkg.Day(dayStart)
	var exists bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM strava_activity
			WHERE athlete_id = $1
			  AND start_date >= $2 AND start_date < $3
			  AND elapsed_time >= $4
			  AND type <> $5
		)
	`, athleteID, from, from.AddDate(0, 0, 1), minSeconds, TypeWorkout).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) Samples(ctx context.Context, activityID int64) (_ Streams, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.samples")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT time_offset, watts, heartrate
		FROM strava_sample
		WHERE activity_id = $1
		ORDER BY time_offset
	`, activityID)
	if err != nil {
		return Streams{}, err
	}
	defer rows.Close()

	var s Streams
	for rows.Next() {
		var (
			offset       int
			watts, heart *float64
		)
		if err := rows.Scan(&offset, &watts, &heart); err != nil {
			return Streams{}, err
		}
		s.Time = append(s.Time, offset)
		s.Watts = append(s.Watts, orNaN(watts))
		s.Heartrate = append(s.Heartrate, orNaN(heart))
	}
	if err := rows.Err(); err != nil {
		return Streams{}, err
	}

	span.SetAttributes(attribute.Int("samples", len(s.Time)))
	return s, nil
}

func (r *Repo) UpdateScores(ctx context.Context, activityID int64, s Scores) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.updatescores")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE strava_activity
		SET tss = $2, hrss = $3, trimp = $4, intensity = $5,
		    variability_index = $6, efficiency_factor = $7, watts_per_kg = $8, scored_at = $9
		WHERE id = $1
	`, activityID, s.TSS, s.HRSS, s.TRIMP, s.Intensity, s.VariabilityIndex, s.EfficiencyFactor, s.WattsPerKg, s.ScoredAt)
	if err != nil {
		return fmt.Errorf("update scores: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DailyStress sums activity stress and strength scores per local calendar
// day in [from, to]. Days without training are absent.
func (r *Repo) DailyStress(ctx context.Context, athleteID int, from, to time.Time) (_ []DailyStress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.dailystress")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tz := from.Location().String()
	rows, err := r.db.Query(ctx, `
		SELECT day, SUM(stress) FROM (
			SELECT (start_date AT TIME ZONE $4)::date AS day,
			       CASE WHEN COALESCE(tss, 0) > 0 THEN tss ELSE COALESCE(hrss, 0) END AS stress
			FROM strava_activity
			WHERE athlete_id = $1 AND scored_at IS NOT NULL
			UNION ALL
			SELECT date AS day, wss AS stress
			FROM strength_score
			WHERE athlete_id = $1
		) loads
		WHERE day >= $2 AND day <= $3
		GROUP BY day
		ORDER BY day
	`, athleteID, pkg.CalendarDate(from), pkg.CalendarDate(to), tz)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyStress
	for rows.Next() {
		var d DailyStress
		if err := rows.Scan(&d.Date, &d.Stress); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Add stores an activity with its samples. Used by the ingestion side and tests.
func (r *Repo) Add(ctx context.Context, a *Activity, s Streams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback: %w: %w", rollbackErr, err)
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO strava_activity (id, athlete_id, name, type, start_date, elapsed_time, moving_time,
		                             average_watts, average_heartrate, ftp, weight_kg)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, a.ID, a.AthleteID, a.Name, a.Type, a.StartDate, a.ElapsedTime, a.MovingTime,
		a.AverageWatts, a.AverageHeartrate, a.FTP, a.WeightKg,
	); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	sampleRows := make([][]any, 0, len(s.Time))
	for i, offset := range s.Time {
		sampleRows = append(sampleRows, []any{a.ID, offset, nullable(s.Watts, i), nullable(s.Heartrate, i)})
	}
	if _, err = tx.CopyFrom(ctx,
		pgx.Identifier{"strava_sample"},
		[]string{"activity_id", "time_offset", "watts", "heartrate"},
		pgx.CopyFromRows(sampleRows),
	); err != nil {
		return fmt.Errorf("copy samples: %w", err)
	}
	return nil
}

func scanActivity(row pgx.Row) (*Activity, error) {
	a := &Activity{}
	var (
		tss, hrss, trimp, intensity, vi, ef, wkg *float64
		scoredAt                                 *time.Time
	)
	if err := row.Scan(
		&a.ID, &a.AthleteID, &a.Name, &a.Type, &a.StartDate, &a.ElapsedTime, &a.MovingTime,
		&a.AverageWatts, &a.AverageHeartrate, &a.FTP, &a.WeightKg,
		&tss, &hrss, &trimp, &intensity, &vi, &ef, &wkg, &scoredAt,
	); err != nil {
		return nil, err
	}
	if scoredAt != nil {
		a.Scores = &Scores{
			TSS:              deref(tss),
			HRSS:             deref(hrss),
			TRIMP:            deref(trimp),
			Intensity:        deref(intensity),
			VariabilityIndex: deref(vi),
			EfficiencyFactor: deref(ef),
			WattsPerKg:       deref(wkg),
			ScoredAt:         *scoredAt,
		}
	}
	return a, nil
}

func collectActivities(rows pgx.Rows) ([]*Activity, error) {
	defer rows.Close()
	var out []*Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func nullable(xs []float64, i int) *float64 {
	if i >= len(xs) || math.IsNaN(xs[i]) {
		return nil
	}
	return &xs[i]
}
