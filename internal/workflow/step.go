package workflow

import "time"

// Step is a daily recommendation code. 21, 22 and 23 form the moderate/HIIT
// sub-cycle.
type Step int

const (
	StepLowFirst Step = 0
	StepHigh     Step = 1
	StepModA     Step = 21
	StepModB     Step = 22
	StepHIIT     Step = 23
	StepLow      Step = 3
	StepRest     Step = 4
	StepRestMore Step = 5
	StepLowAfter Step = 6
)

var stepDescriptions = map[Step]string{
	StepLowFirst: "Low",
	StepHigh:     "High",
	StepModA:     "Mod",
	StepModB:     "Mod",
	StepHIIT:     "HIIT",
	StepLow:      "Low",
	StepRest:     "Rest",
	StepRestMore: "Rest",
	StepLowAfter: "Low",
}

func (s Step) Description() string {
	if d, ok := stepDescriptions[s]; ok {
		return d
	}
	return "Unknown"
}

func (s Step) Valid() bool {
	_, ok := stepDescriptions[s]
	return ok
}

func (s Step) IsHIITMod() bool {
	return s == StepModA || s == StepModB || s == StepHIIT
}

// IsRest steps are complete by definition.
func (s Step) IsRest() bool {
	return s == StepRest || s == StepRestMore
}

// holdable steps repeat when missed while recovery is still normal
func (s Step) holdable() bool {
	return s == StepHigh || s.IsHIITMod()
}

type StepLogEntry struct {
	ID          int       `json:"id"`
	AthleteID   int       `json:"athlete_id"`
	Date        time.Time `json:"date"`
	Step        Step      `json:"workout_step"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Rationale   string    `json:"rationale"`
}

type Transition struct {
	LastStep           Step
	WithinSWC          bool
	CompletedYesterday bool
	NextHIITMod        Step
}

// NextStep applies the daily transition table.
func NextStep(t Transition) Step {
	if !t.CompletedYesterday && t.WithinSWC && t.LastStep.holdable() {
		return t.LastStep
	}

	switch t.LastStep {
	case StepLowFirst:
		return StepHigh
	case StepHigh:
		if t.WithinSWC {
			return t.NextHIITMod
		}
		return StepLowAfter
	case StepModA, StepModB, StepHIIT:
		return StepLow
	case StepLow:
		if t.WithinSWC {
			return StepHigh
		}
		return StepRest
	case StepRest:
		if t.WithinSWC {
			return StepLowAfter
		}
		return StepRestMore
	case StepRestMore:
		return StepLowAfter
	case StepLowAfter:
		if t.WithinSWC {
			return StepHigh
		}
		return StepRest
	default:
		return StepLowFirst
	}
}

// NextHIITMod picks the next step of the 21/22/23 cycle. It advances past
// the most recent completed cycle step and repeats otherwise. history may be
// in any order.
func NextHIITMod(history []StepLogEntry) Step {
	var last *StepLogEntry
	for i := range history {
		e := &history[i]
		if !e.Step.IsHIITMod() || !e.Completed {
			continue
		}
		if last == nil || e.Date.After(last.Date) {
			last = e
		}
	}
	if last == nil {
		return StepModA
	}
	switch last.Step {
	case StepModA:
		return StepModB
	case StepModB:
		return StepHIIT
	default:
		return StepModA
	}
}
