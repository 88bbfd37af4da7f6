package workflow

import (
	"context"

	"github.com/2beens/fitdash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

const processingFlag = "processing"

// FlagRepo keeps the processing marker in refresh_status. Set is a plain
// insert after the caller's IsSet check, so two concurrent runs can both pass.
type FlagRepo struct {
	db *pgxpool.Pool
}

func NewFlagRepo(db *pgxpool.Pool) *FlagRepo {
	return &FlagRepo{
		db: db,
	}
}

func (r *FlagRepo) IsSet(ctx context.Context, athleteID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.flag.isset")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var exists bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM refresh_status WHERE athlete_id = $1 AND process = $2)
	`, athleteID, processingFlag).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *FlagRepo) Set(ctx context.Context, athleteID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.flag.set")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx,
		`INSERT INTO refresh_status (athlete_id, process) VALUES ($1, $2)`,
		athleteID, processingFlag,
	)
	return err
}

func (r *FlagRepo) Clear(ctx context.Context, athleteID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workflow.flag.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx,
		`DELETE FROM refresh_status WHERE athlete_id = $1 AND process = $2`,
		athleteID, processingFlag,
	)
	return err
}
