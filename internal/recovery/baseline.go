package recovery

import (
	"encoding/json"
	"math"
	"time"

	"github.com/2beens/fitdash/pkg"
)

const (
	shortWindow  = 7
	mediumWindow = 30
	longWindow   = 60

	dailyBandWidth     = 1.5
	flowchartBandWidth = 0.5
)

// Day holds the rolling statistics for a single calendar day. Statistics
// without a full window behind them are NaN.
type Day struct {
	Date      time.Time
	RMSSD     float64
	LnRMSSD   float64
	HRAverage float64

	LnRMSSD7     float64
	LnRMSSD30    float64
	LnRMSSD60    float64
	LnRMSSDStd30 float64
	LnRMSSDStd60 float64

	HR7     float64
	HR30    float64
	HR60    float64
	HRStd30 float64
	HRStd60 float64

	// nightly value against 60 day variation
	DailySWCLow    float64
	DailySWCHigh   float64
	WithinDailySWC bool

	// 7 day baseline against 30 day variation, drives the step workflow
	FlowchartSWCLow    float64
	FlowchartSWCHigh   float64
	WithinFlowchartSWC bool

	HRVZ  float64
	HRZ   float64
	HRV7Z float64
	HR7Z  float64

	Recommendation Recommendation
	Label          Label
}

// ComputeBaseline resamples the records to a daily grid and derives the
// rolling statistics, bands, z-scores and classification for each day.
func ComputeBaseline(records []SleepRecord) []Day {
	daily := Resample(records)
	if len(daily) == 0 {
		return nil
	}

	ln := make([]float64, len(daily))
	hr := make([]float64, len(daily))
	for i, r := range daily {
		ln[i] = math.Log(r.RMSSD)
		hr[i] = r.HRAverage
	}

	ln7, ln30, ln60 := rollingMean(ln, shortWindow), rollingMean(ln, mediumWindow), rollingMean(ln, longWindow)
	lnStd30, lnStd60 := rollingStd(ln, mediumWindow), rollingStd(ln, longWindow)
	hr7, hr30, hr60 := rollingMean(hr, shortWindow), rollingMean(hr, mediumWindow), rollingMean(hr, longWindow)
	hrStd30, hrStd60 := rollingStd(hr, mediumWindow), rollingStd(hr, longWindow)

	days := make([]Day, len(daily))
	for i, r := range daily {
		d := Day{
			Date:      r.Date,
			RMSSD:     r.RMSSD,
			LnRMSSD:   ln[i],
			HRAverage: r.HRAverage,

			LnRMSSD7:     ln7[i],
			LnRMSSD30:    ln30[i],
			LnRMSSD60:    ln60[i],
			LnRMSSDStd30: lnStd30[i],
			LnRMSSDStd60: lnStd60[i],

			HR7:     hr7[i],
			HR30:    hr30[i],
			HR60:    hr60[i],
			HRStd30: hrStd30[i],
			HRStd60: hrStd60[i],
		}

		d.DailySWCLow = d.LnRMSSD60 - dailyBandWidth*d.LnRMSSDStd60
		d.DailySWCHigh = d.LnRMSSD60 + dailyBandWidth*d.LnRMSSDStd60
		d.WithinDailySWC = between(d.LnRMSSD, d.DailySWCLow, d.DailySWCHigh)

		d.FlowchartSWCLow = d.LnRMSSD30 - flowchartBandWidth*d.LnRMSSDStd30
		d.FlowchartSWCHigh = d.LnRMSSD30 + flowchartBandWidth*d.LnRMSSDStd30
		d.WithinFlowchartSWC = between(d.LnRMSSD7, d.FlowchartSWCLow, d.FlowchartSWCHigh)

		d.HRVZ = zScore(d.LnRMSSD, d.LnRMSSD30, d.LnRMSSDStd30)
		d.HRZ = zScore(d.HRAverage, d.HR30, d.HRStd30)
		d.HRV7Z = zScore(d.LnRMSSD7, d.LnRMSSD60, d.LnRMSSDStd60)
		d.HR7Z = zScore(d.HR7, d.HR60, d.HRStd60)

		d.Recommendation, d.Label = Classify(d.HRV7Z, d.HR7Z)
		days[i] = d
	}

	return days
}

// FindDay returns the day matching date's calendar date.
func FindDay(days []Day, date time.Time) (Day, bool) {
	target := pkg.CalendarDate(date)
	// most lookups are for today, the last entry
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Date.Equal(target) {
			return days[i], true
		}
		if days[i].Date.Before(target) {
			break
		}
	}
	return Day{}, false
}

// WithinSWC returns the band flag the workflow should act on.
func (d Day) WithinSWC(useDailyBand bool) bool {
	if useDailyBand {
		return d.WithinDailySWC
	}
	return d.WithinFlowchartSWC
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date               string         `json:"date"`
		RMSSD              *float64       `json:"rmssd"`
		LnRMSSD            *float64       `json:"ln_rmssd"`
		HRAverage          *float64       `json:"hr_average"`
		LnRMSSD7           *float64       `json:"ln_rmssd_7"`
		LnRMSSD30          *float64       `json:"ln_rmssd_30"`
		LnRMSSD60          *float64       `json:"ln_rmssd_60"`
		LnRMSSDStd30       *float64       `json:"ln_rmssd_std_30"`
		LnRMSSDStd60       *float64       `json:"ln_rmssd_std_60"`
		HR7                *float64       `json:"hr_7"`
		HR30               *float64       `json:"hr_30"`
		HR60               *float64       `json:"hr_60"`
		HRStd30            *float64       `json:"hr_std_30"`
		HRStd60            *float64       `json:"hr_std_60"`
		DailySWCLow        *float64       `json:"daily_swc_low"`
		DailySWCHigh       *float64       `json:"daily_swc_high"`
		WithinDailySWC     bool           `json:"within_daily_swc"`
		FlowchartSWCLow    *float64       `json:"flowchart_swc_low"`
		FlowchartSWCHigh   *float64       `json:"flowchart_swc_high"`
		WithinFlowchartSWC bool           `json:"within_flowchart_swc"`
		HRVZ               *float64       `json:"hrv_z"`
		HRZ                *float64       `json:"hr_z"`
		HRV7Z              *float64       `json:"hrv_7_z"`
		HR7Z               *float64       `json:"hr_7_z"`
		Recommendation     Recommendation `json:"recommendation"`
		Label              Label          `json:"label"`
	}{
		Date:               d.Date.Format(pkg.DayLayout),
		RMSSD:              finite(d.RMSSD),
		LnRMSSD:            finite(d.LnRMSSD),
		HRAverage:          finite(d.HRAverage),
		LnRMSSD7:           finite(d.LnRMSSD7),
		LnRMSSD30:          finite(d.LnRMSSD30),
		LnRMSSD60:          finite(d.LnRMSSD60),
		LnRMSSDStd30:       finite(d.LnRMSSDStd30),
		LnRMSSDStd60:       finite(d.LnRMSSDStd60),
		HR7:                finite(d.HR7),
		HR30:               finite(d.HR30),
		HR60:               finite(d.HR60),
		HRStd30:            finite(d.HRStd30),
		HRStd60:            finite(d.HRStd60),
		DailySWCLow:        finite(d.DailySWCLow),
		DailySWCHigh:       finite(d.DailySWCHigh),
		WithinDailySWC:     d.WithinDailySWC,
		FlowchartSWCLow:    finite(d.FlowchartSWCLow),
		FlowchartSWCHigh:   finite(d.FlowchartSWCHigh),
		WithinFlowchartSWC: d.WithinFlowchartSWC,
		HRVZ:               finite(d.HRVZ),
		HRZ:                finite(d.HRZ),
		HRV7Z:              finite(d.HRV7Z),
		HR7Z:               finite(d.HR7Z),
		Recommendation:     d.Recommendation,
		Label:              d.Label,
	})
}

// finite maps NaN and ±Inf to JSON null.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
