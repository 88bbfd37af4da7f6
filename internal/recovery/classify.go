package recovery

type Recommendation string

const (
	RecommendationRest Recommendation = "Rest"
	RecommendationLow  Recommendation = "Low"
	RecommendationMod  Recommendation = "Mod"
	RecommendationHigh Recommendation = "High"
)

type Label string

const (
	LabelStressIllness     Label = "Stress/Illness"
	LabelImpairedRecovery  Label = "Impaired Recovery"
	LabelNormalTraining    Label = "Normal Training"
	LabelIntensiveTraining Label = "Intensive Training"
	LabelLowEnergy         Label = "Low Energy/Activation"
	LabelNoTrend           Label = "No Trend Detected"
)

const zThreshold = 1.5

// Classify places a pair of smoothed z-scores into a recommendation region.
// Regions are checked top to bottom; NaN inputs fall through every
// comparison and end up as no trend.
func Classify(hrvZ, hrZ float64) (Recommendation, Label) {
	switch {
	case hrvZ < -zThreshold && hrZ > zThreshold:
		return RecommendationRest, LabelStressIllness
	case hrvZ < -zThreshold && hrZ < -zThreshold:
		return RecommendationLow, LabelLowEnergy
	case hrvZ < -zThreshold:
		return RecommendationLow, LabelImpairedRecovery
	case hrvZ > zThreshold && hrZ < -zThreshold:
		return RecommendationHigh, LabelIntensiveTraining
	case within(hrvZ) && within(hrZ):
		return RecommendationMod, LabelNormalTraining
	default:
		return RecommendationMod, LabelNoTrend
	}
}

func within(z float64) bool {
	return z >= -zThreshold && z <= zThreshold
}
