package training

import (
	"time"

	"github.com/2beens/fitdash/internal/activities"
	"github.com/2beens/fitdash/pkg"
)

const (
	ctlDays = 42
	atlDays = 7
	// days of load before the requested range used to settle the averages
	fitnessWarmupDays = 4 * ctlDays
)

// FitnessDay is the fitness/fatigue/form picture for one day. TSB uses the
// previous day's CTL and ATL so it reflects form going into the day.
type FitnessDay struct {
	Date   time.Time `json:"date"`
	Stress float64   `json:"stress"`
	CTL    float64   `json:"ctl"`
	ATL    float64   `json:"atl"`
	TSB    float64   `json:"tsb"`
}

// Fitness runs exponentially weighted chronic and acute load over daily
// stress and returns the days in [from, to]. Loads before from only seed
// the averages.
func Fitness(loads []activities.DailyStress, from, to time.Time) []FitnessDay {
	from, to = pkg.CalendarDate(from), pkg.CalendarDate(to)
	if to.Before(from) {
		return nil
	}

	byDay := make(map[time.Time]float64, len(loads))
	start := from
	for _, l := range loads {
		d := pkg.CalendarDate(l.Date)
		byDay[d] += l.Stress
		if d.Before(start) {
			start = d
		}
	}

	var (
		ctl, atl float64
		out      []FitnessDay
	)
	for d := start; !d.After(to); d = d.AddDate(0, 0, 1) {
		stress := byDay[d]
		tsb := ctl - atl
		ctl += (stress - ctl) / ctlDays
		atl += (stress - atl) / atlDays
		if d.Before(from) {
			continue
		}
		out = append(out, FitnessDay{
			Date:   d,
			Stress: stress,
			CTL:    ctl,
			ATL:    atl,
			TSB:    tsb,
		})
	}
	return out
}
