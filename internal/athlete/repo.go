package athlete

import (
	"context"
	"fmt"

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

func (r *Repo) Get(ctx context.Context, id int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("athlete", id))

	p := &Profile{}
	err = r.db.QueryRow(ctx, `
		SELECT id, name, sex, birthday, weight_kg, ftp, max_hr, resting_hr, lthr,
		       power_zones, hr_zones, min_workout_seconds, recovery_metric, weekly_tss_goal
		FROM athlete
		WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Name, &p.Sex, &p.Birthday, &p.WeightKg, &p.FTP, &p.MaxHR, &p.RestingHR, &p.LTHR,
		&p.PowerZones, &p.HRZones, &p.MinWorkoutSeconds, &p.RecoveryMetric, &p.WeeklyTSSGoal,
	)
	if err != nil {
		if pkg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Save inserts the profile when ID is zero, otherwise updates it.
func (r *Repo) Save(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if p.ID == 0 {
		err = r.db.QueryRow(ctx, `
			INSERT INTO athlete (name, sex, birthday, weight_kg, ftp, max_hr, resting_hr, lthr,
			                     power_zones, hr_zones, min_workout_seconds, recovery_metric, weekly_tss_goal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id
		`, p.Name, p.Sex, p.Birthday, p.WeightKg, p.FTP, p.MaxHR, p.RestingHR, p.LTHR,
			p.PowerZones, p.HRZones, p.MinWorkoutSeconds, p.RecoveryMetric, p.WeeklyTSSGoal,
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("insert athlete: %w", err)
		}
		return nil
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE athlete
		SET name = $2, sex = $3, birthday = $4, weight_kg = $5, ftp = $6, max_hr = $7,
		    resting_hr = $8, lthr = $9, power_zones = $10, hr_zones = $11,
		    min_workout_seconds = $12, recovery_metric = $13, weekly_tss_goal = $14
		WHERE id = $1
	`, p.ID, p.Name, p.Sex, p.Birthday, p.WeightKg, p.FTP, p.MaxHR, p.RestingHR, p.LTHR,
		p.PowerZones, p.HRZones, p.MinWorkoutSeconds, p.RecoveryMetric, p.WeeklyTSSGoal,
	)
	if err != nil {
		return fmt.Errorf("update athlete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
