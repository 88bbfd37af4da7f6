package training

import (
	"sort"
	"time"

	"github.com/2beens/fitdash/internal/fitbod"
)

const (
	oneRepMaxWindow    = 6 * 7 * 24 * time.Hour
	maxExerciseINOL    = 2.0
	restBetweenSetsSec = 120
)

// Brzycki estimates a one rep max. The formula breaks down at 37 reps.
func Brzycki(weight float64, reps int) float64 {
	if reps <= 0 || reps >= 37 || weight <= 0 {
		return 0
	}
	return weight * 36 / float64(37-reps)
}

// INOL is reps / ((1 - intensity) * 100), intensity a fraction of 1RM.
func INOL(reps int, intensity float64) float64 {
	return float64(reps) / ((1 - intensity) * 100)
}

// OneRepMaxes returns the best estimate per exercise from non warm-up sets
// in the six weeks up to the end of asOf's day.
func OneRepMaxes(history []fitbod.Set, asOf time.Time) map[string]float64 {
	y, m, d := asOf.Date()
	end := time.Date(y, m, d+1, 0, 0, 0, 0, asOf.Location())
	start := end.Add(-oneRepMaxWindow)

	best := make(map[string]float64)
	for _, s := range history {
		if s.IsWarmup || s.PerformedAt.Before(start) || !s.PerformedAt.Before(end) {
			continue
		}
		if orm := Brzycki(s.WeightKg, s.Reps); orm > best[s.Exercise] {
			best[s.Exercise] = orm
		}
	}
	return best
}

// StrengthResult carries the per-exercise INOL behind a workout score.
type StrengthResult struct {
	ExerciseINOL      map[string]float64 `json:"exercise_inol"`
	RelativeIntensity float64            `json:"relative_intensity"`
	DurationSeconds   float64            `json:"duration_seconds"`
	Score             float64            `json:"score"`
}

// WSS converts a strength workout into a TSS-equivalent load. Per exercise
// INOL is summed over its sets and capped at 2; the mean capped INOL acts as
// relative intensity, 1.0 standing in for threshold effort. Sets without a
// 1RM estimate or at/above the estimate are left out.
func WSS(sets []fitbod.Set, oneRepMaxes map[string]float64, durationSeconds float64) StrengthResult {
	res := StrengthResult{
		ExerciseINOL:    make(map[string]float64),
		DurationSeconds: durationSeconds,
	}
	for _, s := range sets {
		if s.IsWarmup || s.Reps <= 0 {
			continue
		}
		orm := oneRepMaxes[s.Exercise]
		if orm <= 0 {
			continue
		}
		intensity := s.WeightKg / orm
		if intensity >= 1 || intensity <= 0 {
			continue
		}
		res.ExerciseINOL[s.Exercise] += INOL(s.Reps, intensity)
	}
	if len(res.ExerciseINOL) == 0 {
		return res
	}

	var total float64
	for ex, inol := range res.ExerciseINOL {
		if inol > maxExerciseINOL {
			inol = maxExerciseINOL
			res.ExerciseINOL[ex] = inol
		}
		total += inol
	}
	res.RelativeIntensity = total / float64(len(res.ExerciseINOL))
	res.Score = StressScore(res.RelativeIntensity, durationSeconds)
	return res
}

// WorkoutDuration spans first to last set plus one set-and-rest slot. The
// export has no session start and end, only per-set timestamps.
func WorkoutDuration(sets []fitbod.Set) float64 {
	if len(sets) == 0 {
		return 0
	}
	times := make([]time.Time, 0, len(sets))
	var timed float64
	for _, s := range sets {
		times = append(times, s.PerformedAt)
		timed += s.DurationS
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	span := times[len(times)-1].Sub(times[0]).Seconds() + restBetweenSetsSec
	if timed > span {
		return timed
	}
	return span
}
