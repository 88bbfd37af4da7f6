package workflow

//go:generate mockgen -source=$GOFILE -destination=runner_mocks_test.go -package=workflow_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/fitdash/internal/athlete"
	"github.com/2beens/fitdash/internal/recovery"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var (
	ErrAlreadyProcessing   = errors.New("workflow already processing")
	ErrInsufficientHistory = errors.New("insufficient sleep history")
	ErrNoRecentData        = errors.New("no recent hrv data")
)

// how far back the 2x cycle position is looked up
const hiitLookbackDays = 90

type stepRepo interface {
	Latest(ctx context.Context, athleteID int) (*StepLogEntry, error)
	GetByDate(ctx context.Context, athleteID int, date time.Time) (*StepLogEntry, error)
	Between(ctx context.Context, athleteID int, from, to time.Time) ([]StepLogEntry, error)
	ListPage(ctx context.Context, athleteID, page, size int) ([]StepLogEntry, error)
	Count(ctx context.Context, athleteID int) (int, error)
	Insert(ctx context.Context, e *StepLogEntry) error
	SetCompleted(ctx context.Context, athleteID int, date time.Time, completed bool) error
	DeleteAll(ctx context.Context, athleteID int) (int64, error)
}

type processFlag interface {
	IsSet(ctx context.Context, athleteID int) (bool, error)
	Set(ctx context.Context, athleteID int) error
	Clear(ctx context.Context, athleteID int) error
}

type baselineSource interface {
	Baseline(ctx context.Context, athleteID int) ([]recovery.Day, error)
}

type profileSource interface {
	Get(ctx context.Context, id int) (*athlete.Profile, error)
}

type activityChecker interface {
	HasQualifyingActivity(ctx context.Context, athleteID int, dayStart time.Time, minSeconds int) (bool, error)
}

// IsSkip reports errors that mean the run was intentionally not executed.
func IsSkip(err error) bool {
	return errors.Is(err, ErrAlreadyProcessing) ||
		errors.Is(err, ErrPlanExists) ||
		errors.Is(err, ErrInsufficientHistory)
}

type Runner struct {
	steps      stepRepo
	flag       processFlag
	baseline   baselineSource
	profiles   profileSource
	activities activityChecker
	metrics    *metrics.Manager
	listeners  []StepListener
}

func NewRunner(
	steps stepRepo,
	flag processFlag,
	baseline baselineSource,
	profiles profileSource,
	activities activityChecker,
	metricsManager *metrics.Manager,
) *Runner {
	return &Runner{
		steps:      steps,
		flag:       flag,
		baseline:   baseline,
		profiles:   profiles,
		activities: activities,
		metrics:    metricsManager,
	}
}

func (r *Runner) AddListener(l StepListener) {
	r.listeners = append(r.listeners, l)
}

// Run inserts today's step. today must carry the athlete's location, day
// boundaries for completion checks are taken from it.
func (r *Runner) Run(ctx context.Context, athleteID int, today time.Time) (_ *StepLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workflow.run")
	defer func() {
		r.metrics.CounterWorkflowRuns.WithLabelValues(runOutcome(err)).Inc()
		tracing.EndSpanWithErrCheck(span, err)
	}()

	processing, err := r.flag.IsSet(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("check processing flag: %w", err)
	}
	if processing {
		return nil, ErrAlreadyProcessing
	}
	if err := r.flag.Set(ctx, athleteID); err != nil {
		return nil, fmt.Errorf("set processing flag: %w", err)
	}
	defer func() {
		if clearErr := r.flag.Clear(context.WithoutCancel(ctx), athleteID); clearErr != nil {
			err = multierr.Append(err, fmt.Errorf("clear processing flag: %w", clearErr))
		}
	}()

	if _, err := r.steps.GetByDate(ctx, athleteID, today); err == nil {
		return nil, ErrPlanExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("get today's plan: %w", err)
	}

	profile, err := r.profiles.Get(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	days, err := r.baseline.Baseline(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	if n := historyDays(days); n < profile.RecoveryMetric.MinHistoryDays() {
		log.Debugf("workflow: %d days of history, need %d", n, profile.RecoveryMetric.MinHistoryDays())
		return nil, ErrInsufficientHistory
	}
	day, ok := recovery.FindDay(days, today)
	if !ok {
		return nil, ErrNoRecentData
	}
	within := day.WithinSWC(profile.RecoveryMetric.UsesDailyBand())

	last, err := r.steps.Latest(ctx, athleteID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("latest step: %w", err)
	}

	var next Step
	var rationale string
	if last == nil {
		next = StepLowFirst
		rationale = "first recommendation"
	} else {
		if err := r.refreshCompletion(ctx, profile, last, today.Location()); err != nil {
			return nil, err
		}

		history, err := r.steps.Between(ctx, athleteID, today.AddDate(0, 0, -hiitLookbackDays), today)
		if err != nil {
			return nil, fmt.Errorf("step history: %w", err)
		}

		t := Transition{
			LastStep:           last.Step,
			WithinSWC:          within,
			CompletedYesterday: last.Completed,
			NextHIITMod:        NextHIITMod(history),
		}
		next = NextStep(t)
		rationale = fmt.Sprintf(
			"last step %d on %s, completed %t, within swc %t, %s",
			last.Step, last.Date.Format(pkg.DayLayout), last.Completed, within, day.Label,
		)
	}

	entry := &StepLogEntry{
		AthleteID:   athleteID,
		Date:        pkg.CalendarDate(today),
		Step:        next,
		Description: next.Description(),
		Completed:   next.IsRest(),
		Rationale:   rationale,
	}
	if err := r.steps.Insert(ctx, entry); err != nil {
		if errors.Is(err, ErrPlanExists) {
			return nil, err
		}
		return nil, fmt.Errorf("insert step: %w", err)
	}

	span.SetAttributes(attribute.Int("step", int(next)))
	log.Infof("workflow: athlete %d step %d (%s) for %s", athleteID, next, entry.Description, entry.Date.Format(pkg.DayLayout))

	for _, l := range r.listeners {
		l.OnStep(ctx, *entry)
	}

	return entry, nil
}

// refreshCompletion updates e.Completed from the activity log before it is
// used as yesterday's outcome.
func (r *Runner) refreshCompletion(ctx context.Context, profile *athlete.Profile, e *StepLogEntry, loc *time.Location) error {
	if e.Completed || e.Step.IsRest() {
		return nil
	}
	done, err := r.activities.HasQualifyingActivity(ctx, profile.ID, localDay(e.Date, loc), profile.MinWorkoutSeconds)
	if err != nil {
		return fmt.Errorf("check completion: %w", err)
	}
	if !done {
		return nil
	}
	if err := r.steps.SetCompleted(ctx, profile.ID, e.Date, true); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	e.Completed = true
	return nil
}

// MarkCompleted flags the step for date when a qualifying activity exists.
// It returns the resulting completed state; dates without a plan report false.
func (r *Runner) MarkCompleted(ctx context.Context, athleteID int, date time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workflow.markcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entry, err := r.steps.GetByDate(ctx, athleteID, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	profile, err := r.profiles.Get(ctx, athleteID)
	if err != nil {
		return false, fmt.Errorf("get profile: %w", err)
	}
	if err := r.refreshCompletion(ctx, profile, entry, date.Location()); err != nil {
		return false, err
	}
	return entry.Completed, nil
}

// Reset drops the athlete's whole step log and any stale processing flag.
func (r *Runner) Reset(ctx context.Context, athleteID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workflow.reset")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	deleted, err := r.steps.DeleteAll(ctx, athleteID)
	if err != nil {
		return 0, fmt.Errorf("delete steps: %w", err)
	}
	if err := r.flag.Clear(ctx, athleteID); err != nil {
		return deleted, fmt.Errorf("clear processing flag: %w", err)
	}
	log.Warnf("workflow: reset athlete %d, %d steps deleted", athleteID, deleted)
	return deleted, nil
}

type StepsPage struct {
	Steps []StepLogEntry `json:"steps"`
	Total int            `json:"total"`
}

func (r *Runner) Steps(ctx context.Context, athleteID, page, size int) (*StepsPage, error) {
	steps, err := r.steps.ListPage(ctx, athleteID, page, size)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	total, err := r.steps.Count(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("count steps: %w", err)
	}
	if steps == nil {
		steps = []StepLogEntry{}
	}
	return &StepsPage{Steps: steps, Total: total}, nil
}

func (r *Runner) StepsBetween(ctx context.Context, athleteID int, from, to time.Time) ([]StepLogEntry, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("to %s is before from %s", to.Format(pkg.DayLayout), from.Format(pkg.DayLayout))
	}
	return r.steps.Between(ctx, athleteID, from, to)
}

func historyDays(days []recovery.Day) int {
	n := 0
	for _, d := range days {
		if !math.IsNaN(d.LnRMSSD) {
			n++
		}
	}
	return n
}

func localDay(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}

func runOutcome(err error) string {
	switch {
	case err == nil:
		return "inserted"
	case errors.Is(err, ErrAlreadyProcessing):
		return "processing"
	case errors.Is(err, ErrPlanExists):
		return "exists"
	case errors.Is(err, ErrInsufficientHistory):
		return "insufficient_history"
	case errors.Is(err, ErrNoRecentData):
		return "no_data"
	default:
		return "error"
	}
}
