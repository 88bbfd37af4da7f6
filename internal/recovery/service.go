package recovery

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=recovery_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/oura"
	"github.com/2beens/fitdash/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrNoData = errors.New("no baseline for date")

type sleepRepo interface {
	ListSleep(ctx context.Context, athleteID int) ([]oura.SleepSummary, error)
	Version(ctx context.Context, athleteID int) (string, error)
}

// Service recomputes the baseline from raw sleep data on every call.
type Service struct {
	repo sleepRepo
}

func NewService(repo sleepRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Baseline(ctx context.Context, athleteID int) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.recovery.baseline")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	summaries, err := s.repo.ListSleep(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("list sleep: %w", err)
	}

	days := ComputeBaseline(FromSummaries(summaries))
	span.SetAttributes(attribute.Int("days", len(days)))
	return days, nil
}

func (s *Service) Readiness(ctx context.Context, athleteID int, date time.Time) (*Day, error) {
	days, err := s.Baseline(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	day, ok := FindDay(days, date)
	if !ok {
		return nil, ErrNoData
	}
	return &day, nil
}

// DataVersion changes whenever the sleep data behind the baseline does.
func (s *Service) DataVersion(ctx context.Context, athleteID int) (string, error) {
	return s.repo.Version(ctx, athleteID)
}
