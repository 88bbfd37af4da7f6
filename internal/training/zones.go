package training

import "math"

// TimeInZones buckets sample intervals by value relative to threshold.
// Boundaries are ascending fractions of threshold; the result has one more
// zone than boundaries. Intervals are credited to the reading at their end.
func TimeInZones(times []int, values []float64, threshold float64, boundaries []float64) []float64 {
	zones := make([]float64, len(boundaries)+1)
	if threshold <= 0 {
		return zones
	}
	for i := 1; i < len(times) && i < len(values); i++ {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		frac := v / threshold
		z := 0
		for z < len(boundaries) && frac >= boundaries[z] {
			z++
		}
		zones[z] += float64(times[i] - times[i-1])
	}
	return zones
}
