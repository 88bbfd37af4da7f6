package activities

import (
	"errors"
	"math"
	"time"
)

var ErrNotFound = errors.New("activity not found")

// TypeWorkout is the catch-all Strava type; it never counts as a completed
// planned session.
const TypeWorkout = "Workout"

type Activity struct {
	ID               int64     `json:"id"`
	AthleteID        int       `json:"athlete_id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	StartDate        time.Time `json:"start_date"`
	ElapsedTime      int       `json:"elapsed_time"`
	MovingTime       int       `json:"moving_time"`
	AverageWatts     *float64  `json:"average_watts,omitempty"`
	AverageHeartrate *float64  `json:"average_heartrate,omitempty"`
	// threshold values recorded with the activity, may be unset
	FTP      *float64 `json:"ftp,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
	Scores   *Scores  `json:"scores,omitempty"`
}

// Scores are the derived training load numbers written back after scoring.
type Scores struct {
	TSS              float64   `json:"tss"`
	HRSS             float64   `json:"hrss"`
	TRIMP            float64   `json:"trimp"`
	Intensity        float64   `json:"intensity"`
	VariabilityIndex float64   `json:"variability_index"`
	EfficiencyFactor float64   `json:"efficiency_factor"`
	WattsPerKg       float64   `json:"watts_per_kg"`
	ScoredAt         time.Time `json:"scored_at"`
}

// Stress is TSS when the activity had power, HRSS otherwise.
func (s Scores) Stress() float64 {
	if s.TSS > 0 {
		return s.TSS
	}
	return s.HRSS
}

// Streams are per-second samples, aligned by index. Missing readings are NaN.
type Streams struct {
	Time      []int
	Watts     []float64
	Heartrate []float64
}

func (s Streams) HasPower() bool {
	return hasValue(s.Watts)
}

func (s Streams) HasHeartrate() bool {
	return hasValue(s.Heartrate)
}

func hasValue(xs []float64) bool {
	for _, x := range xs {
		if !math.IsNaN(x) && x > 0 {
			return true
		}
	}
	return false
}

type DailyStress struct {
	Date   time.Time `json:"date"`
	Stress float64   `json:"stress"`
}
