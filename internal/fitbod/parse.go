package fitbod

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitdash/pkg"
)

const (
	colDate       = "Date"
	colExercise   = "Exercise"
	colReps       = "Reps"
	colWeight     = "Weight(kg)"
	colDuration   = "Duration(s)"
	colIsWarmup   = "isWarmup"
	colMultiplier = "multiplier"
)

var requiredColumns = []string{colDate, colExercise, colReps, colWeight}

var dateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Parse reads a Fitbod workout export. Warm-up sets are dropped. Sets are
// numbered per exercise and local day in file order. Timestamps without a
// zone are read in loc.
func Parse(r io.Reader, athleteID int, loc *time.Location) ([]Set, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty export")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	type setKey struct {
		day      string
		exercise string
	}
	counters := make(map[setKey]int)

	var sets []Set
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		warmup, err := parseBool(field(record, colIsWarmup))
		if err != nil {
			return nil, fmt.Errorf("line %d: isWarmup: %w", line, err)
		}
		if warmup {
			continue
		}

		performedAt, err := parseDate(field(record, colDate), loc)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		exercise := field(record, colExercise)
		if exercise == "" {
			return nil, fmt.Errorf("line %d: empty exercise", line)
		}
		reps, err := parseInt(field(record, colReps))
		if err != nil {
			return nil, fmt.Errorf("line %d: reps: %w", line, err)
		}
		weight, err := parseFloat(field(record, colWeight))
		if err != nil {
			return nil, fmt.Errorf("line %d: weight: %w", line, err)
		}
		duration, err := parseFloat(field(record, colDuration))
		if err != nil {
			return nil, fmt.Errorf("line %d: duration: %w", line, err)
		}
		multiplier, err := parseFloat(field(record, colMultiplier))
		if err != nil {
			return nil, fmt.Errorf("line %d: multiplier: %w", line, err)
		}
		if multiplier > 0 {
			weight *= multiplier
		}

		key := setKey{day: performedAt.In(loc).Format(pkg.DayLayout), exercise: exercise}
		counters[key]++

		sets = append(sets, Set{
			AthleteID:   athleteID,
			PerformedAt: performedAt,
			Exercise:    exercise,
			SetNumber:   counters[key],
			Reps:        reps,
			WeightKg:    weight,
			DurationS:   duration,
		})
	}

	return sets, nil
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(strings.ToLower(s))
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	// some exports write reps as 10.0
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
