package recovery

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// rollingMean is the trailing mean over window values; positions without a
// full window of observations are NaN.
func rollingMean(xs []float64, window int) []float64 {
	return rolling(xs, window, func(w []float64) float64 {
		return stat.Mean(w, nil)
	})
}

// rollingStd is the trailing sample standard deviation (n-1 denominator).
func rollingStd(xs []float64, window int) []float64 {
	return rolling(xs, window, func(w []float64) float64 {
		return stat.StdDev(w, nil)
	})
}

func rolling(xs []float64, window int, agg func([]float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = math.NaN()
		if window <= 0 || i+1 < window {
			continue
		}
		w := xs[i+1-window : i+1]
		if hasNaN(w) {
			continue
		}
		out[i] = agg(w)
	}
	return out
}

func hasNaN(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}

// zScore is NaN when the spread is zero or unknown.
func zScore(value, mean, std float64) float64 {
	if std == 0 || math.IsNaN(std) {
		return math.NaN()
	}
	return (value - mean) / std
}

// between is false whenever any operand is NaN.
func between(v, low, high float64) bool {
	return low <= v && v <= high
}
