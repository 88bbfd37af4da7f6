package training

import (
	"math"

	"github.com/2beens/fitdash/internal/athlete"
)

const trimpScale = 0.64

func trimpCoefficient(sex athlete.Sex) float64 {
	if sex == athlete.SexFemale {
		return 1.67
	}
	return 1.92
}

// heartRateReserve is the Karvonen fraction clamped to [0, 1]. ok is false
// when max and resting rate leave no reserve to normalise against.
func heartRateReserve(hr, restingHR, maxHR float64) (float64, bool) {
	reserve := maxHR - restingHR
	if reserve <= 0 {
		return 0, false
	}
	return math.Max(0, math.Min(1, (hr-restingHR)/reserve)), true
}

// TRIMP is Banister's training impulse. times are sample offsets in seconds
// aligned with hr; each interval is weighted by the reading at its end.
func TRIMP(times []int, hr []float64, restingHR, maxHR float64, sex athlete.Sex) float64 {
	k := trimpCoefficient(sex)
	var trimp float64
	for i := 1; i < len(times) && i < len(hr); i++ {
		if math.IsNaN(hr[i]) {
			continue
		}
		hrr, ok := heartRateReserve(hr[i], restingHR, maxHR)
		if !ok {
			return 0
		}
		minutes := float64(times[i]-times[i-1]) / 60
		trimp += minutes * hrr * trimpScale * math.Exp(k*hrr)
	}
	return trimp
}

// HRSS scales TRIMP against one hour at lactate threshold heart rate, so an
// hour at LTHR scores 100. A degenerate profile (no heart rate reserve or an
// LTHR at resting rate) scores 0.
func HRSS(trimp, lthr, restingHR, maxHR float64, sex athlete.Sex) float64 {
	hrr, ok := heartRateReserve(lthr, restingHR, maxHR)
	if !ok {
		return 0
	}
	hourAtThreshold := 60 * hrr * trimpScale * math.Exp(trimpCoefficient(sex)*hrr)
	if hourAtThreshold <= 0 {
		return 0
	}
	return trimp / hourAtThreshold * 100
}

// AverageHeartrate ignores missing readings.
func AverageHeartrate(hr []float64) float64 {
	var (
		sum   float64
		count int
	)
	for _, h := range hr {
		if math.IsNaN(h) {
			continue
		}
		sum += h
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
