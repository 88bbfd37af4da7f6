package oura

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("no sleep data")
	ErrUnknownAthlete = errors.New("unknown athlete")
)

// SleepSummary is one nightly Oura record. Metrics Oura did not report
// are nil.
type SleepSummary struct {
	AthleteID  int       `json:"athlete_id"`
	ReportDate time.Time `json:"report_date"`
	RMSSD      *float64  `json:"rmssd"`
	HRAverage  *float64  `json:"hr_average"`
	HRLowest   *float64  `json:"hr_lowest"`
}
