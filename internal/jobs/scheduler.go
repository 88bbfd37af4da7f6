package jobs

//go:generate mockgen -source=$GOFILE -destination=scheduler_mocks_test.go -package=jobs_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/internal/training"
	"github.com/2beens/fitdash/internal/workflow"
	"github.com/2beens/fitdash/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var ErrRefreshRunning = errors.New("refresh already running")

type fitbodImporter interface {
	Import(ctx context.Context) (int64, error)
}

type activityScorer interface {
	ScorePending(ctx context.Context, athleteID int) (int, error)
	ScoreStrength(ctx context.Context, athleteID int, date time.Time) (*training.StrengthResult, error)
}

type workflowRunner interface {
	MarkCompleted(ctx context.Context, athleteID int, date time.Time) (bool, error)
	Run(ctx context.Context, athleteID int, today time.Time) (*workflow.StepLogEntry, error)
}

// Report is what a single refresh did. Err holds every sub-step failure.
type Report struct {
	SetsImported     int64                  `json:"sets_imported"`
	ActivitiesScored int                    `json:"activities_scored"`
	StrengthScores   map[string]float64     `json:"strength_scores"`
	Completed        map[string]bool        `json:"completed"`
	Step             *workflow.StepLogEntry `json:"step,omitempty"`
	WorkflowSkip     string                 `json:"workflow_skip,omitempty"`
	Err              error                  `json:"-"`
}

type Scheduler struct {
	importer  fitbodImporter // nil when no export is configured
	scorer    activityScorer
	runner    workflowRunner
	athleteID int
	loc       *time.Location
	interval  time.Duration
	metrics   *metrics.Manager
	now       func() time.Time

	running sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewScheduler(
	importer fitbodImporter,
	scorer activityScorer,
	runner workflowRunner,
	athleteID int,
	loc *time.Location,
	interval time.Duration,
	metricsManager *metrics.Manager,
) *Scheduler {
	return &Scheduler{
		importer:  importer,
		scorer:    scorer,
		runner:    runner,
		athleteID: athleteID,
		loc:       loc,
		interval:  interval,
		metrics:   metricsManager,
		now:       time.Now,
	}
}

// Start runs a refresh every interval until Stop or ctx is done. The first
// refresh happens after one interval.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Debugln("refresh scheduler stopped")
				return
			case <-ticker.C:
				report, err := s.Refresh(ctx)
				if err != nil {
					log.Errorf("scheduled refresh: %s", err)
					continue
				}
				if report.Err != nil {
					log.Warnf("scheduled refresh finished with errors: %s", report.Err)
				}
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Refresh runs the whole pipeline once. Sub-step failures are collected
// into Report.Err and never stop the following steps; the returned error
// is only ErrRefreshRunning.
func (s *Scheduler) Refresh(ctx context.Context) (*Report, error) {
	if !s.running.TryLock() {
		s.observe("busy", 0)
		return nil, ErrRefreshRunning
	}
	defer s.running.Unlock()

	ctx, span := tracing.GlobalTracer.Start(ctx, "jobs.scheduler.refresh")
	begin := time.Now()
	report := s.refresh(ctx)
	tracing.EndSpanWithErrCheck(span, report.Err)

	result := "ok"
	if report.Err != nil {
		result = "partial"
	}
	s.observe(result, time.Since(begin))
	return report, nil
}

func (s *Scheduler) refresh(ctx context.Context) *Report {
	report := &Report{
		StrengthScores: make(map[string]float64),
		Completed:      make(map[string]bool),
	}
	today := pkg.Day(s.now().In(s.loc))
	yesterday := today.AddDate(0, 0, -1)

	if s.importer != nil {
		n, err := s.importer.Import(ctx)
		report.SetsImported = n
		if err != nil {
			report.Err = multierr.Append(report.Err, fmt.Errorf("fitbod import: %w", err))
		}
	}

	scored, err := s.scorer.ScorePending(ctx, s.athleteID)
	report.ActivitiesScored = scored
	if err != nil {
		report.Err = multierr.Append(report.Err, fmt.Errorf("score activities: %w", err))
	}

	for _, day := range []time.Time{yesterday, today} {
		res, err := s.scorer.ScoreStrength(ctx, s.athleteID, day)
		if err != nil {
			report.Err = multierr.Append(report.Err, fmt.Errorf("strength score %s: %w", day.Format(pkg.DayLayout), err))
			continue
		}
		if res.Score > 0 {
			report.StrengthScores[day.Format(pkg.DayLayout)] = res.Score
		}
	}

	for _, day := range []time.Time{yesterday, today} {
		completed, err := s.runner.MarkCompleted(ctx, s.athleteID, day)
		if err != nil {
			report.Err = multierr.Append(report.Err, fmt.Errorf("mark completed %s: %w", day.Format(pkg.DayLayout), err))
			continue
		}
		report.Completed[day.Format(pkg.DayLayout)] = completed
	}

	entry, err := s.runner.Run(ctx, s.athleteID, today)
	switch {
	case err == nil:
		report.Step = entry
	case workflow.IsSkip(err):
		report.WorkflowSkip = err.Error()
		log.Debugf("workflow run skipped: %s", err)
	default:
		report.Err = multierr.Append(report.Err, fmt.Errorf("workflow run: %w", err))
	}

	return report
}

func (s *Scheduler) observe(result string, took time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterRefreshJobs.WithLabelValues(result).Inc()
	if took > 0 {
		s.metrics.HistogramRefreshDuration.Observe(took.Seconds())
	}
}
