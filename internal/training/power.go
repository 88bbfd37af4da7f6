package training

import (
	"math"
)

const npWindowSeconds = 30

// NormalizedPower expects 1 Hz samples. Dropouts (NaN) count as zero watts.
// Rides shorter than the smoothing window are averaged as a single window.
func NormalizedPower(watts []float64) float64 {
	if len(watts) == 0 {
		return 0
	}
	clean := zeroNaN(watts)

	window := npWindowSeconds
	if len(clean) < window {
		window = len(clean)
	}

	var (
		sum     float64
		fourths float64
		count   int
	)
	for i, w := range clean {
		sum += w
		if i >= window {
			sum -= clean[i-window]
		}
		if i+1 >= window {
			avg := sum / float64(window)
			fourths += math.Pow(avg, 4)
			count++
		}
	}
	return math.Pow(fourths/float64(count), 0.25)
}

// AveragePower averages all samples, dropouts as zero.
func AveragePower(watts []float64) float64 {
	if len(watts) == 0 {
		return 0
	}
	var sum float64
	for _, w := range zeroNaN(watts) {
		sum += w
	}
	return sum / float64(len(watts))
}

// RelativeIntensity is NP over FTP, zero without a threshold.
func RelativeIntensity(np, ftp float64) float64 {
	if ftp <= 0 {
		return 0
	}
	return np / ftp
}

func VariabilityIndex(np, avgPower float64) float64 {
	if avgPower <= 0 {
		return 0
	}
	return np / avgPower
}

func EfficiencyFactor(np, avgHR float64) float64 {
	if avgHR <= 0 {
		return 0
	}
	return np / avgHR
}

// StressScore converts a relative intensity and a duration into a TSS-like
// load: an hour at threshold scores 100.
func StressScore(ri, durationSeconds float64) float64 {
	return ri * ri * (durationSeconds / 3600) * 100
}

// MeanMaxPower returns the best average power held for each duration
// (seconds, 1 Hz samples). Durations longer than the ride are omitted.
func MeanMaxPower(watts []float64, durations []int) map[int]float64 {
	clean := zeroNaN(watts)
	prefix := make([]float64, len(clean)+1)
	for i, w := range clean {
		prefix[i+1] = prefix[i] + w
	}

	out := make(map[int]float64, len(durations))
	for _, d := range durations {
		if d <= 0 || d > len(clean) {
			continue
		}
		best := 0.0
		for end := d; end <= len(clean); end++ {
			if avg := (prefix[end] - prefix[end-d]) / float64(d); avg > best {
				best = avg
			}
		}
		out[d] = best
	}
	return out
}

func zeroNaN(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if !math.IsNaN(x) {
			out[i] = x
		}
	}
	return out
}
