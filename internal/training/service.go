package training

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/activities"
	"github.com/2beens/fitdash/internal/athlete"
	"github.com/2beens/fitdash/internal/fitbod"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var meanMaxDurations = []int{5, 60, 300, 1200, 3600}

type activityRepo interface {
	Get(ctx context.Context, id int64) (*activities.Activity, error)
	ListUnscored(ctx context.Context, athleteID int) ([]*activities.Activity, error)
	Samples(ctx context.Context, activityID int64) (activities.Streams, error)
	UpdateScores(ctx context.Context, activityID int64, s activities.Scores) error
	DailyStress(ctx context.Context, athleteID int, from, to time.Time) ([]activities.DailyStress, error)
}

type profileRepo interface {
	Get(ctx context.Context, id int) (*athlete.Profile, error)
}

type restingHRSource interface {
	LatestLowestHR(ctx context.Context, athleteID int, onOrBefore time.Time) (float64, error)
}

type strengthRepo interface {
	ListSets(ctx context.Context, athleteID int, from, to time.Time) ([]fitbod.Set, error)
	SaveScore(ctx context.Context, athleteID int, date time.Time, wss float64) error
}

type Service struct {
	activities activityRepo
	profiles   profileRepo
	restingHR  restingHRSource
	strength   strengthRepo
	metrics    *metrics.Manager
	now        func() time.Time
}

func NewService(
	activities activityRepo,
	profiles profileRepo,
	restingHR restingHRSource,
	strength strengthRepo,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		activities: activities,
		profiles:   profiles,
		restingHR:  restingHR,
		strength:   strength,
		metrics:    metricsManager,
		now:        time.Now,
	}
}

// ScoreActivity reads one activity with its samples and writes back the
// derived scores.
func (s *Service) ScoreActivity(ctx context.Context, activityID int64) (_ *activities.Scores, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.scoreactivity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int64("activity", activityID))

	a, err := s.activities.Get(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	profile, err := s.profiles.Get(ctx, a.AthleteID)
	if err != nil {
		return nil, fmt.Errorf("get athlete profile: %w", err)
	}
	streams, err := s.activities.Samples(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("get samples: %w", err)
	}

	scores := s.computeScores(ctx, a, profile, streams)
	if err := s.activities.UpdateScores(ctx, activityID, scores); err != nil {
		return nil, fmt.Errorf("store scores: %w", err)
	}
	s.metrics.CounterActivitiesScored.Inc()

	return &scores, nil
}

func (s *Service) computeScores(ctx context.Context, a *activities.Activity, profile *athlete.Profile, streams activities.Streams) activities.Scores {
	duration := float64(a.MovingTime)
	if duration <= 0 {
		duration = float64(a.ElapsedTime)
	}

	ftp := profile.FTP
	if a.FTP != nil && *a.FTP > 0 {
		ftp = *a.FTP
	} else {
		log.Debugf("activity %d: no ftp recorded, using profile ftp %.0f", a.ID, ftp)
	}
	weight := profile.WeightKg
	if a.WeightKg != nil && *a.WeightKg > 0 {
		weight = *a.WeightKg
	}

	scores := activities.Scores{ScoredAt: s.now().UTC()}

	avgHR := AverageHeartrate(streams.Heartrate)
	if streams.HasPower() {
		np := NormalizedPower(streams.Watts)
		scores.Intensity = RelativeIntensity(np, ftp)
		scores.TSS = StressScore(scores.Intensity, duration)
		scores.VariabilityIndex = VariabilityIndex(np, AveragePower(streams.Watts))
		scores.EfficiencyFactor = EfficiencyFactor(np, avgHR)
		if weight > 0 {
			scores.WattsPerKg = np / weight
		}
	}

	if streams.HasHeartrate() {
		resting := float64(profile.RestingHR)
		if lowest, err := s.restingHR.LatestLowestHR(ctx, a.AthleteID, a.StartDate); err == nil && lowest > 0 {
			resting = lowest
		}
		maxHR := float64(profile.MaxHR)
		scores.TRIMP = TRIMP(streams.Time, streams.Heartrate, resting, maxHR, profile.Sex)
		scores.HRSS = HRSS(scores.TRIMP, float64(profile.LTHR), resting, maxHR, profile.Sex)
	}

	return scores
}

// ScorePending scores every unscored activity, continuing past failures.
func (s *Service) ScorePending(ctx context.Context, athleteID int) (scored int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.scorepending")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	pending, err := s.activities.ListUnscored(ctx, athleteID)
	if err != nil {
		return 0, fmt.Errorf("list unscored: %w", err)
	}

	for _, a := range pending {
		if _, scoreErr := s.ScoreActivity(ctx, a.ID); scoreErr != nil {
			err = multierr.Append(err, fmt.Errorf("activity %d: %w", a.ID, scoreErr))
			continue
		}
		scored++
	}
	span.SetAttributes(attribute.Int("scored", scored))
	return scored, err
}

// ScoreStrength scores the Fitbod workout on date against trailing 1RM
// estimates. A day without sets scores 0 and stores nothing.
func (s *Service) ScoreStrength(ctx context.Context, athleteID int, date time.Time) (_ *StrengthResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.scorestrength")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	dayStart := pkg.Day(date)
	dayEnd := dayStart.AddDate(0, 0, 1)
	history, err := s.strength.ListSets(ctx, athleteID, dayEnd.Add(-oneRepMaxWindow), dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	var today []fitbod.Set
	for _, set := range history {
		if !set.PerformedAt.Before(dayStart) && set.PerformedAt.Before(dayEnd) {
			today = append(today, set)
		}
	}
	if len(today) == 0 {
		return &StrengthResult{ExerciseINOL: map[string]float64{}}, nil
	}

	res := WSS(today, OneRepMaxes(history, dayStart), WorkoutDuration(today))
	if err := s.strength.SaveScore(ctx, athleteID, pkg.CalendarDate(dayStart), res.Score); err != nil {
		return nil, fmt.Errorf("save strength score: %w", err)
	}
	return &res, nil
}

// Fitness returns CTL/ATL/TSB for the local days in [from, to].
func (s *Service) Fitness(ctx context.Context, athleteID int, from, to time.Time) (_ []FitnessDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.fitness")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if to.Before(from) {
		return nil, errors.New("to before from")
	}
	loads, err := s.activities.DailyStress(ctx, athleteID, from.AddDate(0, 0, -fitnessWarmupDays), to)
	if err != nil {
		return nil, fmt.Errorf("daily stress: %w", err)
	}
	return Fitness(loads, from, to), nil
}

type ActivityDetail struct {
	Activity     *activities.Activity `json:"activity"`
	PowerZones   []float64            `json:"power_zones_seconds,omitempty"`
	HRZones      []float64            `json:"hr_zones_seconds,omitempty"`
	MeanMaxPower map[int]float64      `json:"mean_max_power,omitempty"`
}

func (s *Service) ActivityDetail(ctx context.Context, activityID int64) (_ *ActivityDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.activitydetail")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a, err := s.activities.Get(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	profile, err := s.profiles.Get(ctx, a.AthleteID)
	if err != nil {
		return nil, fmt.Errorf("get athlete profile: %w", err)
	}
	streams, err := s.activities.Samples(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("get samples: %w", err)
	}

	detail := &ActivityDetail{Activity: a}
	if streams.HasPower() {
		ftp := profile.FTP
		if a.FTP != nil && *a.FTP > 0 {
			ftp = *a.FTP
		}
		detail.PowerZones = TimeInZones(streams.Time, streams.Watts, ftp, profile.PowerZones)
		detail.MeanMaxPower = MeanMaxPower(streams.Watts, meanMaxDurations)
	}
	if streams.HasHeartrate() {
		detail.HRZones = TimeInZones(streams.Time, streams.Heartrate, float64(profile.LTHR), profile.HRZones)
	}
	return detail, nil
}
