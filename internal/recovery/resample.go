package recovery

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/fitdash/internal/oura"
	"github.com/2beens/fitdash/pkg"
)

// SleepRecord is one night of input to the baseline. Missing metrics are NaN.
type SleepRecord struct {
	Date      time.Time
	RMSSD     float64
	HRAverage float64
}

func FromSummaries(summaries []oura.SleepSummary) []SleepRecord {
	records := make([]SleepRecord, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, SleepRecord{
			Date:      pkg.CalendarDate(s.ReportDate),
			RMSSD:     positiveOrNaN(s.RMSSD),
			HRAverage: valueOrNaN(s.HRAverage),
		})
	}
	return records
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// positiveOrNaN drops non-positive RMSSD readings. Their log is not finite and
// would poison every rolling window that covers the night; as NaN the night is
// interpolated like a missing one.
func positiveOrNaN(v *float64) float64 {
	if v == nil || *v <= 0 {
		return math.NaN()
	}
	return *v
}

// Resample puts the records on a continuous daily grid from the first to the
// last night. Nights with several records are averaged, gaps are linearly
// interpolated and values after the last observation carry it forward.
// Leading gaps stay NaN.
func Resample(records []SleepRecord) []SleepRecord {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]SleepRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := pkg.CalendarDate(sorted[0].Date)
	last := pkg.CalendarDate(sorted[len(sorted)-1].Date)
	n := pkg.DaysBetween(first, last) + 1

	rmssd := newBucket(n)
	hr := newBucket(n)
	for _, r := range sorted {
		i := pkg.DaysBetween(first, r.Date)
		rmssd.add(i, r.RMSSD)
		hr.add(i, r.HRAverage)
	}

	rmssdDaily := interpolate(rmssd.means())
	hrDaily := interpolate(hr.means())

	out := make([]SleepRecord, n)
	for i := range out {
		out[i] = SleepRecord{
			Date:      first.AddDate(0, 0, i),
			RMSSD:     rmssdDaily[i],
			HRAverage: hrDaily[i],
		}
	}
	return out
}

type bucket struct {
	sum   []float64
	count []int
}

func newBucket(n int) *bucket {
	return &bucket{sum: make([]float64, n), count: make([]int, n)}
}

func (b *bucket) add(i int, v float64) {
	if math.IsNaN(v) {
		return
	}
	b.sum[i] += v
	b.count[i]++
}

func (b *bucket) means() []float64 {
	out := make([]float64, len(b.sum))
	for i := range out {
		if b.count[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = b.sum[i] / float64(b.count[i])
	}
	return out
}

func interpolate(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	prev := -1
	for i, v := range out {
		if math.IsNaN(v) {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			step := (v - out[prev]) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				out[j] = out[prev] + step*float64(j-prev)
			}
		}
		prev = i
	}
	if prev >= 0 {
		for j := prev + 1; j < len(out); j++ {
			out[j] = out[prev]
		}
	}
	return out
}
