package athlete

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("athlete not found")

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// RecoveryMetric picks which SWC band drives the daily workflow.
type RecoveryMetric string

const (
	// 7 day baseline against the 30 day band
	MetricHRVBaseline RecoveryMetric = "hrv_baseline"
	// nightly value against the 60 day band
	MetricHRV RecoveryMetric = "hrv"
)

// MinHistoryDays is how much sleep history the metric needs before the
// workflow produces a recommendation.
func (m RecoveryMetric) MinHistoryDays() int {
	if m == MetricHRV {
		return 60
	}
	return 30
}

func (m RecoveryMetric) UsesDailyBand() bool {
	return m == MetricHRV
}

type Profile struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Sex               Sex            `json:"sex"`
	Birthday          *time.Time     `json:"birthday,omitempty"`
	WeightKg          float64        `json:"weight_kg"`
	FTP               float64        `json:"ftp"`
	MaxHR             int            `json:"max_hr"`
	RestingHR         int            `json:"resting_hr"`
	LTHR              int            `json:"lthr"`
	PowerZones        []float64      `json:"power_zones"`
	HRZones           []float64      `json:"hr_zones"`
	MinWorkoutSeconds int            `json:"min_workout_seconds"`
	RecoveryMetric    RecoveryMetric `json:"recovery_metric"`
	WeeklyTSSGoal     float64        `json:"weekly_tss_goal"`
}
