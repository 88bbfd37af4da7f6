package fitbod

import "time"

// Set is one logged strength set. SetNumber orders sets of the same exercise
// within a workout and, with the timestamp, identifies the row.
type Set struct {
	AthleteID   int       `json:"athlete_id"`
	PerformedAt time.Time `json:"performed_at"`
	Exercise    string    `json:"exercise"`
	SetNumber   int       `json:"set_number"`
	Reps        int       `json:"reps"`
	WeightKg    float64   `json:"weight_kg"`
	DurationS   float64   `json:"duration_s"`
	IsWarmup    bool      `json:"is_warmup"`
}
